package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"innpilot/constants"
	"innpilot/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolDate(t *testing.T) {
	fallback := day("2026-08-29")

	parsed, err := parseToolDate("", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, parsed)

	parsed, err = parseToolDate("2026-09-15", fallback)
	require.NoError(t, err)
	assert.Equal(t, day("2026-09-15"), parsed)

	_, err = parseToolDate("next tuesday", fallback)
	assert.Error(t, err)
}

func TestParseToolDateNormalizesFallback(t *testing.T) {
	noon := time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC)
	parsed, err := parseToolDate("", noon)
	require.NoError(t, err)
	assert.Equal(t, day("2026-08-29"), parsed)
}

func TestDispatchGuardsMutatingTools(t *testing.T) {
	s := &AgentService{}

	for tool := range mutatingTools {
		call := toolCall{Tool: tool, Args: json.RawMessage(`{}`)}
		_, err := s.dispatch(context.Background(), 1, constants.RoleReceptionist, call)
		require.Error(t, err, tool)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeUnauthorized, appErr.Code)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	s := &AgentService{}

	call := toolCall{Tool: "order_pizza", Args: json.RawMessage(`{}`)}
	_, err := s.dispatch(context.Background(), 1, constants.RoleSuperAdmin, call)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidOperation, appErr.Code)
}
