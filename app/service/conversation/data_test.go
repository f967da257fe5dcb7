package conversation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHistory_RoleTagged(t *testing.T) {
	raw := json.RawMessage(`[
		{"role":"user","content":"hi"},
		{"role":"assistant","content":"hello"},
		{"role":"model","content":"from gemini"},
		{"role":"bot","content":"from widget"},
		{"role":"assistant","content":"  "}
	]`)

	turns := NormalizeHistory(raw)

	assert.Equal(t, []Turn{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
		{Role: RoleAssistant, Content: "from gemini"},
		{Role: RoleAssistant, Content: "from widget"},
	}, turns)
}

func TestNormalizeHistory_Pairs(t *testing.T) {
	raw := json.RawMessage(`[["hi","hello"],["how much?","depends"]]`)

	turns := NormalizeHistory(raw)

	assert.Equal(t, []Turn{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
		{Role: RoleUser, Content: "how much?"},
		{Role: RoleAssistant, Content: "depends"},
	}, turns)
}

func TestNormalizeHistory_Garbage(t *testing.T) {
	assert.Nil(t, NormalizeHistory(nil))
	assert.Nil(t, NormalizeHistory(json.RawMessage(`"not a list"`)))
	assert.Nil(t, NormalizeHistory(json.RawMessage(`{{{`)))
}
