package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/config"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/dataset"
)

// testConfig returns a configuration over a short window that writes into
// a temporary directory.
func testConfig(t *testing.T, extra string) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	content := "start_date: 2024-03-30\n" +
		"end_date: 2024-04-02\n" +
		"output_file: " + filepath.Join(dir, "out", "sales.csv") + "\n" +
		"sample_rows: 3\n" + extra
	path := filepath.Join(dir, "salesgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	return cfg, dir
}

func TestGenerateWritesDatasetAndReport(t *testing.T) {
	logDir := t.TempDir()
	cfg, _ := testConfig(t, "run_log_dir: "+logDir+"\n")

	var out bytes.Buffer
	require.NoError(t, runGenerate(cfg, true, &out))

	orders, err := dataset.Read(cfg.OutputFile)
	require.NoError(t, err)
	assert.NotEmpty(t, orders)
	assert.Equal(t, "ORD1000", orders[0].OrderID)
	assert.Equal(t, "2024-03-30", orders[0].Date)
	assert.Equal(t, "2024-04-02", orders[len(orders)-1].Date)

	report := out.String()
	assert.True(t, strings.HasPrefix(report, "Dataset created successfully!\n"))
	assert.Contains(t, report, "Date Range: 2024-03-30 to 2024-04-02")
	assert.Contains(t, report, "SUMMARY STATISTICS")
	assert.Contains(t, report, " File saved as: "+cfg.OutputFile)

	logs, err := filepath.Glob(filepath.Join(logDir, "generation_summary_*.txt"))
	require.NoError(t, err)
	require.Len(t, logs, 1)

	summary, err := os.ReadFile(logs[0])
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Last Order ID:  "+orders[len(orders)-1].OrderID)
}

func TestGenerateIsReproducible(t *testing.T) {
	cfg, _ := testConfig(t, "")
	var first, second bytes.Buffer

	require.NoError(t, runGenerate(cfg, false, &first))
	a, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	require.NoError(t, runGenerate(cfg, false, &second))
	b, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, first.String(), second.String())
}

func TestGenerateWritesWorkbook(t *testing.T) {
	cfg, dir := testConfig(t, "")
	cfg.XLSXFile = filepath.Join(dir, "sales.xlsx")

	require.NoError(t, runGenerate(cfg, false, &bytes.Buffer{}))
	assert.FileExists(t, cfg.XLSXFile)
}

func TestReportMatchesGenerate(t *testing.T) {
	cfg, _ := testConfig(t, "")

	var generated bytes.Buffer
	require.NoError(t, runGenerate(cfg, false, &generated))

	var reported bytes.Buffer
	require.NoError(t, runReport(cfg, "", &reported))

	body := strings.TrimPrefix(generated.String(), "Dataset created successfully!\n")
	body = body[:strings.Index(body, "\n File saved as:")]
	assert.Equal(t, body, reported.String())
}

func TestReportMissingInput(t *testing.T) {
	cfg, dir := testConfig(t, "")
	err := runReport(cfg, filepath.Join(dir, "missing.csv"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	cfg, dir := testConfig(t, "")
	require.NoError(t, runGenerate(cfg, false, &bytes.Buffer{}))

	var out bytes.Buffer
	require.NoError(t, runValidate(cfg, "", "", 0, &out))
	assert.Contains(t, out.String(), "no errors")

	orders, err := dataset.Read(cfg.OutputFile)
	require.NoError(t, err)
	orders[1].Region = "Atlantis"
	tampered := filepath.Join(dir, "tampered.csv")
	require.NoError(t, dataset.Write(tampered, orders))

	errorLog := filepath.Join(dir, "errors.txt")
	out.Reset()
	err = runValidate(cfg, tampered, errorLog, 0, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 error(s)")
	assert.Contains(t, out.String(), "Atlantis")
	assert.FileExists(t, errorLog)
}

func TestConfigCommand(t *testing.T) {
	_, dir := testConfig(t, "")
	path := filepath.Join(dir, "salesgen.yaml")

	out, err := executeRoot(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "start_date: \"2024-03-30\"")
	assert.Contains(t, out, "sample_rows: 3")
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	printVersion(&out)
	assert.Contains(t, out.String(), "Sales Dataset Generator")
	assert.Contains(t, out.String(), "Version:    "+Version)
}

func TestReportReadsWorkbook(t *testing.T) {
	cfg, dir := testConfig(t, "")
	cfg.XLSXFile = filepath.Join(dir, "sales.xlsx")
	require.NoError(t, runGenerate(cfg, false, &bytes.Buffer{}))

	var fromCSV, fromXLSX bytes.Buffer
	require.NoError(t, runReport(cfg, cfg.OutputFile, &fromCSV))
	require.NoError(t, runReport(cfg, cfg.XLSXFile, &fromXLSX))
	assert.Equal(t, fromCSV.String(), fromXLSX.String())

	require.NoError(t, runValidate(cfg, cfg.XLSXFile, "", 0, &bytes.Buffer{}))
}

// executeRoot runs the root command with args and returns its output.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		cfgFile = config.DefaultConfigFile
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootWithoutSubcommandGenerates(t *testing.T) {
	cfg, dir := testConfig(t, "")

	out, err := executeRoot(t, "--config", filepath.Join(dir, "salesgen.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Dataset created successfully!\n"))
	assert.Contains(t, out, "SUMMARY STATISTICS")
	assert.FileExists(t, cfg.OutputFile)
}

func TestRootRejectsStrayArguments(t *testing.T) {
	_, dir := testConfig(t, "")
	_, err := executeRoot(t, "--config", filepath.Join(dir, "salesgen.yaml"), "bogus")
	assert.Error(t, err)
}
