package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_SetGet(t *testing.T) {
	t.Run("Should overwrite only the named field", func(t *testing.T) {
		u := User{ID: "1", Name: "Aaron Miles", Email: "aaron@mailinator.com", Role: "member"}

		ok := u.Set(FieldRole, "admin")

		require.True(t, ok)
		assert.Equal(t, User{ID: "1", Name: "Aaron Miles", Email: "aaron@mailinator.com", Role: "admin"}, u)
		assert.Equal(t, "admin", u.Get(FieldRole))
	})

	t.Run("Should accept any value without validation", func(t *testing.T) {
		u := User{ID: "1", Email: "a@x.com"}

		require.True(t, u.Set(FieldEmail, "not an email"))

		assert.Equal(t, "not an email", u.Email)
	})

	t.Run("Should report unknown fields without mutating", func(t *testing.T) {
		u := User{ID: "1", Name: "Ann"}

		assert.False(t, u.Set(Field("id"), "2"))
		assert.Equal(t, "1", u.ID)
		assert.Empty(t, u.Get(Field("id")))
	})
}

func TestUser_JSON(t *testing.T) {
	t.Run("Should serialize without view state", func(t *testing.T) {
		data, err := json.Marshal(User{ID: "5", Name: "Ann Lee", Email: "a@x.com", Role: "admin"})

		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"5","name":"Ann Lee","email":"a@x.com","role":"admin"}`, string(data))
	})
}

func TestFields(t *testing.T) {
	t.Run("Should list fields in display order with titles", func(t *testing.T) {
		var titles []string
		for _, f := range Fields() {
			titles = append(titles, f.Title())
		}
		assert.Equal(t, []string{"Name", "Email", "Role"}, titles)
	})
}
