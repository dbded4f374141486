package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testImportPath = "../shared/utils/toast"

func TestReplaceCallsDefaultsToInfo(t *testing.T) {
	t.Parallel()

	input := `alert("literal text");`
	output := ReplaceCalls(input)

	assert.Equal(t, `toast.info("literal text");`, output)
	assert.NotContains(t, output, "alert(")
}

func TestReplaceCallsSuccessKeyword(t *testing.T) {
	t.Parallel()

	output := ReplaceCalls(`alert('Saved successfully!');`)

	assert.Equal(t, `toast.success('Saved successfully!');`, output)
}

func TestReplaceCallsErrorKeyword(t *testing.T) {
	t.Parallel()

	output := ReplaceCalls(`alert('Error: could not save');`)

	assert.Equal(t, `toast.error('Error: could not save');`, output)
}

func TestReplaceCallsErrorOverridesSuccess(t *testing.T) {
	t.Parallel()

	output := ReplaceCalls(`alert('Failed to save customer');`)

	assert.Equal(t, `toast.error('Failed to save customer');`, output)
}

func TestReplaceCallsCommentGuard(t *testing.T) {
	t.Parallel()

	input := `// alert('debug');`

	assert.Equal(t, input, ReplaceCalls(input))
}

func TestReplaceCallsUnbalancedParensPassThrough(t *testing.T) {
	t.Parallel()

	input := `alert('message spanning` // closing paren lives on the next line

	assert.Equal(t, input, ReplaceCalls(input))
}

func TestReplaceCallsPreservesOtherLines(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"const onSave = async () => {",
		"  await save();",
		"  alert('Saved successfully!');",
		"};",
	}, "\n")

	output := ReplaceCalls(input)

	expected := strings.Join([]string{
		"const onSave = async () => {",
		"  await save();",
		"  toast.success('Saved successfully!');",
		"};",
	}, "\n")
	assert.Equal(t, expected, output)
}

func TestReplaceCallsTemplateLiteralArgument(t *testing.T) {
	t.Parallel()

	output := ReplaceCalls("alert(`Created ${count} assets`);")

	assert.Equal(t, "toast.success(`Created ${count} assets`);", output)
}

func TestReplaceCallsIdempotent(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		`alert('Saved successfully!');`,
		`alert('Error: could not save');`,
		`alert('Please select a customer');`,
	}, "\n")

	once := ReplaceCalls(input)
	twice := ReplaceCalls(once)

	assert.Equal(t, once, twice)
	assert.NotContains(t, once, "alert(")
}

func TestEnsureImportAlreadyPresent(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"import React from 'react';",
		"import { toast } from '../shared/utils/toast';",
		"",
		"alert('hello');",
	}, "\n")

	assert.Equal(t, input, EnsureImport(input, testImportPath))
}

func TestEnsureImportAlternateSpelling(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"import toast from 'react-hot-toast';",
		"",
		"alert('hello');",
	}, "\n")

	assert.Equal(t, input, EnsureImport(input, testImportPath))
}

func TestEnsureImportInsertsAfterLastImport(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"import React from 'react';",
		"import { useState } from 'react';",
		"",
		"export function UserList() {}",
	}, "\n")

	output := EnsureImport(input, testImportPath)

	expected := strings.Join([]string{
		"import React from 'react';",
		"import { useState } from 'react';",
		"import { toast } from '../shared/utils/toast';",
		"",
		"export function UserList() {}",
	}, "\n")
	assert.Equal(t, expected, output)
}

func TestEnsureImportNoImportsUnchanged(t *testing.T) {
	t.Parallel()

	input := "export const x = 1;\nalert('hello');\n"

	assert.Equal(t, input, EnsureImport(input, testImportPath))
}

func TestEnsureImportSkipsIndentedImports(t *testing.T) {
	t.Parallel()

	// The pattern is anchored at line start, so a dynamic import inside a
	// function body is not an insertion point.
	input := strings.Join([]string{
		"function load() {",
		"  import('./lazy').then(use);",
		"}",
	}, "\n")

	assert.Equal(t, input, EnsureImport(input, testImportPath))
}
