package hostname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_StripsWWWAndLowercases(t *testing.T) {
	assert.Equal(t, "example.com", Normalize("https://www.Example.com/x"))
	assert.Equal(t, "example.com", Normalize("http://EXAMPLE.com"))
	assert.Equal(t, "sub.example.com", Normalize("https://sub.example.com/path?q=1"))
}

func TestNormalize_KeepsInnerWWW(t *testing.T) {
	// Only a leading "www." is stripped.
	assert.Equal(t, "wwwexample.com", Normalize("https://wwwexample.com"))
	assert.Equal(t, "example.www.com", Normalize("https://www.example.www.com"))
}

func TestNormalize_MalformedURLYieldsSentinel(t *testing.T) {
	assert.Equal(t, Unknown, Normalize("not a url"))
	assert.Equal(t, Unknown, Normalize("#"))
	assert.Equal(t, Unknown, Normalize(""))
	assert.Equal(t, Unknown, Normalize("://missing-scheme"))
}

func TestNormalize_RelativeURLHasNoHost(t *testing.T) {
	assert.Equal(t, Unknown, Normalize("/relative/path"))
}

func TestFromLink_EmptyInsteadOfSentinel(t *testing.T) {
	assert.Equal(t, "example.com", FromLink("https://www.example.com"))
	assert.Equal(t, "", FromLink("not a url"))
}
