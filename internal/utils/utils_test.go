package utils

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	ctx := SetUserContext(context.Background(), 7, "rosa@floreria.cl", "ADMIN")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, "rosa@floreria.cl", GetUserEmailFromContext(ctx))
	assert.Equal(t, "ADMIN", GetUserRoleFromContext(ctx))
	assert.True(t, IsAdmin(ctx))
}

func TestUserContext_Empty(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
	assert.Equal(t, "", GetUserEmailFromContext(ctx))
	assert.False(t, IsAdmin(ctx))
}

func TestToUint(t *testing.T) {
	n, err := ToUint("42")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), n)

	_, err = ToUint("not-a-number")
	assert.Error(t, err)
}

func TestToInt64(t *testing.T) {
	n, err := ToInt64("9007199254740993")
	assert.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), n)
}

func TestPtrHelpers(t *testing.T) {
	s := "hola"
	assert.Equal(t, "hola", PtrString(&s))
	assert.Equal(t, "", PtrString(nil))
	assert.Equal(t, &s, StrPtr("hola"))

	i := 3
	assert.Equal(t, 3, PtrInt(&i))
	assert.Equal(t, 0, PtrInt(nil))
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, "boom", 500)

	assert.Equal(t, 500, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"boom"}`, w.Body.String())
}
