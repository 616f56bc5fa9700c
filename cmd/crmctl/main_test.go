package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/intelligence"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func setupVault(t *testing.T) {
	t.Helper()
	t.Setenv("STORE_DRIVER", "file")
	t.Setenv("VAULT_DIR", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("LOG_LEVEL", "error")
}

func TestLeadsList(t *testing.T) {
	setupVault(t)

	out, err := runCLI(t, "leads", "list")
	require.NoError(t, err)
	// principal lands on the ledger, which has no closed mandates yet
	assert.Contains(t, out, "CLIENT")
	assert.NotContains(t, out, "Vikram Malhotra")

	out, err = runCLI(t, "leads", "list", "--scope", "leads", "--residency", "NRI")
	require.NoError(t, err)
	assert.Contains(t, out, "Rajesh Gupta")
	assert.NotContains(t, out, "Sarah Chen")
}

func TestLeadsAddAndStatus(t *testing.T) {
	setupVault(t)

	out, err := runCLI(t, "leads", "add",
		"--first", "Kabir", "--last", "Mehta",
		"--email", "kabir@example.com", "--phone", "+91 99887 66554",
		"--ceiling", "$20M - $50M")
	require.NoError(t, err)
	assert.Contains(t, out, "Mandate successfully registered in Nexus Prive Vault.")
	assert.Contains(t, out, "value=2050")

	_, err = runCLI(t, "leads", "status", "m3", "Closed", "--role", string(entity.WealthAdvisor))
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	out, err = runCLI(t, "leads", "status", "m3", "Closed", "--role", string(entity.Principal))
	require.NoError(t, err)
	assert.Contains(t, out, "m3: Site Visit -> Closed")

	out, err = runCLI(t, "pipeline", "ledger")
	require.NoError(t, err)
	assert.Contains(t, out, "Total settled")
	assert.Contains(t, out, "18000000")
	assert.Contains(t, out, "360000")
}

func TestIntelFallsBackWithoutKey(t *testing.T) {
	setupVault(t)

	out, err := runCLI(t, "intel", "memo", "m1")
	require.NoError(t, err)
	assert.Contains(t, out, intelligence.MemoFallback)

	_, err = runCLI(t, "intel", "outreach", "missing")
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestRolesRunsOffline(t *testing.T) {
	t.Setenv("STORE_DRIVER", "nonsense")

	out, err := runCLI(t, "roles")
	require.NoError(t, err)
	assert.Contains(t, out, "Wealth Advisor")
	assert.Contains(t, out, "Settlement Ledger")
}
