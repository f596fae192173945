package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func memoryConfig(t *testing.T) string {
	dir := t.TempDir()
	cfg := "storage:\n  driver: memory\narchive:\n  type: local\n  local_path: " + filepath.Join(dir, "exports") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0644))
	return dir
}

func TestHashPasscode(t *testing.T) {
	out, err := execute(t, "hash-passcode", "open sesame")
	require.NoError(t, err)
	hashed := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("open sesame")))
}

func TestResetRequiresConfirmation(t *testing.T) {
	dir := memoryConfig(t)
	// 标志在多次执行之间保留，先测不带 --all 的情况
	_, err := execute(t, "--config", dir, "reset")
	assert.ErrorContains(t, err, "--all")

	_, err = execute(t, "--config", dir, "reset", "--all")
	assert.ErrorContains(t, err, "--yes")
}

func TestStatsJSON(t *testing.T) {
	dir := memoryConfig(t)
	out, err := execute(t, "--config", dir, "stats", "--json")
	require.NoError(t, err)

	var sum struct {
		CurrentStreak int `json:"currentStreak"`
		Level         struct {
			Title string `json:"title"`
		} `json:"level"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 0, sum.CurrentStreak)
	assert.Equal(t, "Seeker", sum.Level.Title)
}
