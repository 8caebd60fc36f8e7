package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"success":true,"message":"ok","data":{"id":"n1"},"metadata":{"page":1}}`))
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, "ok", env.Message)
	id, ok := env.Data.Field("id")
	require.True(t, ok)
	s, _ := id.AsString()
	assert.Equal(t, "n1", s)
	assert.Equal(t, KindObject, env.Metadata.Kind())
}

func TestDecodeEnvelope_MissingMembersAreNull(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"success":true}`))
	require.NoError(t, err)
	assert.True(t, env.Data.IsNull())
	assert.True(t, env.Metadata.IsNull())
}

func TestDecodeEnvelope_Rejects(t *testing.T) {
	_, err := DecodeEnvelope([]byte(`[1,2]`))
	assert.ErrorIs(t, err, ErrUnexpectedShape)

	_, err = DecodeEnvelope([]byte(`<html>`))
	assert.Error(t, err)

	_, err = DecodeEnvelope([]byte(`{"success":"yes"}`))
	assert.Error(t, err)
}

func TestDecodeError(t *testing.T) {
	body, ok := DecodeError([]byte(`{"success":false,"message":"Title required"}`))
	require.True(t, ok)
	assert.Equal(t, "Title required", body.Message)
	assert.False(t, body.Success)

	for _, doc := range []string{`not json`, `{"success":false}`, `{"message":42}`, `"message"`} {
		_, ok := DecodeError([]byte(doc))
		assert.False(t, ok, doc)
	}
}

func TestDecodeLogin(t *testing.T) {
	data, err := DecodeLogin([]byte(`{"success":true,"message":"","data":{"access_token":"tok","token_type":"bearer"}}`))
	require.NoError(t, err)
	assert.Equal(t, "tok", data.AccessToken)
	assert.Equal(t, "bearer", data.TokenType)

	_, err = DecodeLogin([]byte(`{"success":true,"data":{}}`))
	assert.ErrorIs(t, err, ErrUnexpectedShape)

	_, err = DecodeLogin([]byte(`{`))
	assert.Error(t, err)
}
