package model

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/pharmamesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(content string) Request {
	return Request{
		Instructions: "instructions",
		Messages:     []core.Message{core.NewUserMessage(content)},
	}
}

func TestMockModel_CannedResponse(t *testing.T) {
	m := NewMockModel("test")
	m.AddResponse("hello", "world")

	resp, err := m.Generate(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, "world", resp.Text)
	assert.Equal(t, 1, m.Calls())
}

func TestMockModel_DefaultEcho(t *testing.T) {
	m := NewMockModel("test")

	resp, err := m.Generate(context.Background(), request("anything"))
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: anything", resp.Text)
}

func TestMockModel_QueueTakesPrecedence(t *testing.T) {
	m := NewMockModel("test")
	m.AddResponse("hello", "canned")
	m.QueueResponse("first")
	m.QueueResponse("second")

	resp, err := m.Generate(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Text)

	resp, err = m.Generate(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Text)

	// Queue drained: canned response applies again.
	resp, err = m.Generate(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, "canned", resp.Text)
}

func TestMockModel_FailWith(t *testing.T) {
	m := NewMockModel("test")
	boom := errors.New("boom")
	m.FailWith(boom)

	_, err := m.Generate(context.Background(), request("hello"))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, m.Calls())
}

func TestMockModel_ContextCancelled(t *testing.T) {
	m := NewMockModel("test")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, request("hello"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockModel_NoMessages(t *testing.T) {
	m := NewMockModel("test")

	_, err := m.Generate(context.Background(), Request{})
	assert.Error(t, err)
}

func TestMockModel_Info(t *testing.T) {
	m := NewMockModel("test")
	assert.Equal(t, Info{Name: "test", Provider: "mock"}, m.Info())
}
