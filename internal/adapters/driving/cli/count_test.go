package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountCmd_Use(t *testing.T) {
	assert.Equal(t, "count [query]", countCmd.Use)
}

func TestCountCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	testSearchMock.count = 1337

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"count", "*.py"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "*.py", testSearchMock.lastQuery)
	assert.Contains(t, buf.String(), "1337")
}

func TestCountCmd_EmptyQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	testSearchMock.count = 9

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"count"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "", testSearchMock.lastQuery)
	assert.Contains(t, buf.String(), "9")
}

func TestCountCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	testSearchMock.err = errors.New("engine unavailable")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"count", "*"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "count failed")
}
