package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.Equal(t, "alex@example.com", Email("reach me at alex@example.com please"))
	assert.Equal(t, "a.b+tag@sub.domain.org", Email("a.b+tag@sub.domain.org"))
	assert.Equal(t, "first@x.io", Email("first@x.io and second@y.io"))
	assert.Empty(t, Email("no address here"))
	assert.Empty(t, Email("broken@nodomain"))
}

func TestName_Introduced(t *testing.T) {
	assert.Equal(t, "Alex", Name("My name is Alex"))
	assert.Equal(t, "Alex Chen", Name("my name is Alex Chen, nice to meet you"))
	assert.Equal(t, "Sam", Name("I'm Sam"))
	assert.Equal(t, "Sam", Name("I am Sam"))
	assert.Equal(t, "Maria", Name("call me Maria"))
	assert.Equal(t, "John Smith", Name("Hello, this is John Smith from Acme"))
}

func TestName_BareCapitalized(t *testing.T) {
	assert.Equal(t, "Alex Chen", Name("Alex Chen"))
	assert.Equal(t, "Alex", Name("  Alex  "))
}

func TestName_Absent(t *testing.T) {
	assert.Empty(t, Name("what services do you offer?"))
	assert.Empty(t, Name("tell me about pricing"))
	assert.Empty(t, Name("alex chen")) // lowercase, not shaped like a name
}

// A capitalized two-word message is misread as a name. Known and accepted:
// extraction is a best-effort signal, not a parser.
func TestName_FalsePositiveTolerated(t *testing.T) {
	assert.Equal(t, "Quarterly Report", Name("Quarterly Report"))
}

func TestInterestSignal(t *testing.T) {
	assert.True(t, InterestSignal("I have a project in mind"))
	assert.True(t, InterestSignal("I'm INTERESTED in solar"))
	assert.True(t, InterestSignal("need help with my installation"))
	assert.True(t, InterestSignal("looking for a sustainability partner"))
	assert.False(t, InterestSignal("what time do you open?"))
}

func TestJustEmail(t *testing.T) {
	assert.True(t, JustEmail("alex@example.com"))
	assert.True(t, JustEmail("  alex@example.com  "))
	assert.False(t, JustEmail("alex@example.com, interested in AR"))
	assert.False(t, JustEmail("hello"))
}
