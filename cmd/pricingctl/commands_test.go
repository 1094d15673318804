package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/dto"
	grpcPresentation "github.com/BharatAnkh/borrower-insight-hub/internal/presentation/grpc"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--pretty=false"))
	err := cmd.Execute()
	return out.String(), err
}

func decodeOutput[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestPriceCommand(t *testing.T) {
	out, err := runCommand(t, "price", "--principal", "10000", "--rate", "8.5", "--term", "12", "--fee", "2.5")
	require.NoError(t, err)

	quote := decodeOutput[dto.QuoteResponse](t, out)
	assert.Equal(t, "872.2", quote.PeriodicPayment.String())
	assert.Equal(t, "9750", quote.NetDisbursement.String())
}

func TestPriceCommand_Schedule(t *testing.T) {
	out, err := runCommand(t, "price", "--principal", "1200", "--rate", "0", "--term", "12", "--schedule", "--start", "2026-01-01")
	require.NoError(t, err)

	sched := decodeOutput[dto.ScheduleResponse](t, out)
	require.Len(t, sched.Entries, 12)
	assert.Equal(t, "100", sched.Entries[0].Total.String())
	assert.True(t, sched.Entries[11].RemainingBalance.IsZero())
}

func TestPriceCommand_Errors(t *testing.T) {
	_, err := runCommand(t, "price", "--principal", "10000", "--term", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "term")

	_, err = runCommand(t, "price", "--term", "12")
	require.Error(t, err)

	_, err = runCommand(t, "price", "--principal", "100", "--term", "12", "--schedule", "--start", "01/02/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestScoreCommand(t *testing.T) {
	out, err := runCommand(t, "score",
		"--factor", "Payment History:85:35",
		"--factor", "Income Stability:72:30",
		"--factor", "Account Activity:90:20",
		"--factor", "Employment History:68:15",
		"--drivers", "2",
	)
	require.NoError(t, err)

	score := decodeOutput[dto.CompositeScoreResponse](t, out)
	assert.InDelta(t, 79.55, score.Score, 1e-9)
	assert.Len(t, score.Drivers, 2)
}

func TestScoreCommand_RequiresInput(t *testing.T) {
	_, err := runCommand(t, "score")
	require.Error(t, err)
}

func TestParseFactor(t *testing.T) {
	tests := []struct {
		raw     string
		want    dto.ScoreFactorInput
		wantErr bool
	}{
		{raw: "Payment History:85:35", want: dto.ScoreFactorInput{Name: "Payment History", RawScore: 85, WeightPercent: 35}},
		{raw: "Ratio: debt:income:40:10", want: dto.ScoreFactorInput{Name: "Ratio: debt:income", RawScore: 40, WeightPercent: 10}},
		{raw: "NoWeight:85", wantErr: true},
		{raw: ":85:35", wantErr: true},
		{raw: "A:high:35", wantErr: true},
		{raw: "A:85:x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseFactor(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyAndMatchCommands(t *testing.T) {
	out, err := runCommand(t, "classify", "--score", "742")
	require.NoError(t, err)
	assert.Equal(t, "MEDIUM", decodeOutput[dto.ClassifyRiskResponse](t, out).Tier)

	out, err = runCommand(t, "classify", "--score", "80", "--scale", "identity")
	require.NoError(t, err)
	assert.Equal(t, "LOW", decodeOutput[dto.ClassifyRiskResponse](t, out).Tier)

	_, err = runCommand(t, "classify", "--score", "80", "--scale", "vantage")
	require.Error(t, err)

	out, err = runCommand(t, "match", "--score", "742", "--amount", "25000", "--qualifying-only")
	require.NoError(t, err)
	match := decodeOutput[dto.MatchLendersResponse](t, out)
	require.Len(t, match.Results, 2)
	assert.Equal(t, "2", match.Results[0].Lender.ID)
	assert.Equal(t, "4", match.Results[1].Lender.ID)
}

func TestSearchCommand(t *testing.T) {
	out, err := runCommand(t, "search", "borrowers", "uber")
	require.NoError(t, err)
	assert.Len(t, decodeOutput[dto.SearchBorrowersResponse](t, out).Borrowers, 2)

	out, err = runCommand(t, "search", "lenders")
	require.NoError(t, err)
	assert.Len(t, decodeOutput[dto.SearchLendersResponse](t, out).Lenders, 4)

	_, err = runCommand(t, "search", "brokers", "x")
	require.Error(t, err)
}

func TestDevCertsCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "dev-certs", "--out", dir, "--hosts", "localhost")
	require.NoError(t, err)

	for _, name := range []string{"ca.pem", "server.pem", "server-key.pem"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRemoteEngine(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	local, err := newLocalEngine(io.Discard)
	require.NoError(t, err)

	srv, err := grpcPresentation.NewServer(grpcPresentation.NewPricingHandler(local.svc), grpcPresentation.ServerConfig{HealthName: "pricing-service"}, nil, logger)
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.ServeListener(lis) }()
	t.Cleanup(srv.GracefulStop)

	out, err := runCommand(t, "--server", lis.Addr().String(), "match", "--score", "742", "--amount", "25000")
	require.NoError(t, err)
	match := decodeOutput[dto.MatchLendersResponse](t, out)
	assert.Equal(t, 2, match.QualifyingCount)
	assert.Len(t, match.Results, 4)
}
