package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khairulnizam/template-mapper/internal/document/doctest"
)

func TestScanCLI_ListsPlaceholders(t *testing.T) {
	binary := getBinaryPath(t)

	path := filepath.Join(t.TempDir(), "surat.docx")
	require.NoError(t, doctest.NewBuilder().
		Paragraph("Kepada <<NAMA_SYARIKAT>>").
		Paragraph("Rujukan: <<RUJUKAN>>").
		Paragraph("Sekian.").
		Write(path))

	cmd := exec.Command(binary, "scan", "--template", path)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Found 2 placeholders")
	assert.Contains(t, string(output), "<<NAMA_SYARIKAT>>")
	assert.Contains(t, string(output), "<<RUJUKAN>>")
}

func TestScanCLI_MissingTemplateFlag(t *testing.T) {
	binary := getBinaryPath(t)

	cmd := exec.Command(binary, "scan")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)
	assert.Contains(t, string(output), "template")
}

func TestValidateCLI_InvalidTemplateExitsNonZero(t *testing.T) {
	binary := getBinaryPath(t)

	path := filepath.Join(t.TempDir(), "rosak.docx")
	require.NoError(t, doctest.NewBuilder().
		Paragraph("satu").
		Paragraph("dua").
		Paragraph("<<LUAR<<DALAM>>>>").
		Write(path))

	cmd := exec.Command(binary, "validate", "--template", path)
	output, err := cmd.CombinedOutput()

	require.Error(t, err)
	assert.Contains(t, string(output), "Nested placeholders found")
}

func TestModulesCLI_ListsBuiltins(t *testing.T) {
	binary := getBinaryPath(t)

	cmd := exec.Command(binary, "modules")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Form2")
	assert.Contains(t, string(output), "NAMA_SYARIKAT")
}
