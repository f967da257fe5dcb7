package conversation

import (
	"encoding/json"
	"strings"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one prior exchange entry in normalized form.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NormalizeHistory accepts both history shapes the widget may send: a list
// of role-tagged records, or a list of [user, bot] string pairs. Unknown
// roles count as user turns. Anything unparseable normalizes to no history.
func NormalizeHistory(raw json.RawMessage) []Turn {
	if len(raw) == 0 {
		return nil
	}

	var tagged []Turn
	if err := json.Unmarshal(raw, &tagged); err == nil {
		result := make([]Turn, 0, len(tagged))

		for _, turn := range tagged {
			if strings.TrimSpace(turn.Content) == "" {
				continue
			}

			role := RoleUser
			switch strings.ToLower(turn.Role) {
			case RoleAssistant, "model", "bot":
				role = RoleAssistant
			}

			result = append(result, Turn{Role: role, Content: turn.Content})
		}

		return result
	}

	var pairs [][]string
	if err := json.Unmarshal(raw, &pairs); err == nil {
		var result []Turn

		for _, pair := range pairs {
			if len(pair) > 0 && strings.TrimSpace(pair[0]) != "" {
				result = append(result, Turn{Role: RoleUser, Content: pair[0]})
			}
			if len(pair) > 1 && strings.TrimSpace(pair[1]) != "" {
				result = append(result, Turn{Role: RoleAssistant, Content: pair[1]})
			}
		}

		return result
	}

	return nil
}
