package api

import (
	"fmt"

	"github.com/compozy/members/engine/user"
	"github.com/tidwall/gjson"
)

// DecodeMembers parses a members feed. The root must be a JSON array; each
// object element becomes a User and anything else is skipped. Ids may be
// strings or numbers and are kept as text.
func DecodeMembers(body []byte) ([]user.User, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedPayload)
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrMalformedPayload, describe(root))
	}
	users := make([]user.User, 0, len(root.Array()))
	root.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		users = append(users, user.User{
			ID:    item.Get("id").String(),
			Name:  item.Get("name").String(),
			Email: item.Get("email").String(),
			Role:  item.Get("role").String(),
		})
		return true
	})
	return users, nil
}

func describe(r gjson.Result) string {
	if r.IsObject() {
		return "object"
	}
	return r.Type.String()
}
