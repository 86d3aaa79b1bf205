package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imperiuse/popo/scaffold"
)

func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(fs, viper.New())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return strings.TrimSpace(out.String()), err
}

func TestMake(t *testing.T) {
	fs := afero.NewMemMapFs()

	path, err := execute(t, fs, "make", "SamplePopo", "--dir", "dto")
	require.Nil(t, err)
	assert.Equal(t, "dto/sample_popo.go", path)

	src, err := afero.ReadFile(fs, path)
	require.Nil(t, err)
	assert.Contains(t, string(src), "package dto")
	assert.Contains(t, string(src), "type SamplePopo struct")
}

func TestMake_Alias(t *testing.T) {
	fs := afero.NewMemMapFs()

	path, err := execute(t, fs, "make:popo", "array popo", "--dir", "dto", "--package", "mocks", "--factory")
	require.Nil(t, err)
	assert.Equal(t, "dto/array_popo.go", path)

	src, _ := afero.ReadFile(fs, path)
	assert.Contains(t, string(src), "package mocks")
	assert.Contains(t, string(src), `return "ArrayPopoFactory"`)
}

func TestMake_Exists(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := execute(t, fs, "make", "Invoice", "--dir", "dto")
	require.Nil(t, err)

	_, err = execute(t, fs, "make", "Invoice", "--dir", "dto")
	assert.ErrorIs(t, err, scaffold.ErrFileExists)

	_, err = execute(t, fs, "make", "Invoice", "--dir", "dto", "--force")
	assert.Nil(t, err)
}

func TestMake_Args(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := execute(t, fs, "make")
	assert.NotNil(t, err)

	_, err = execute(t, fs, "make", "123")
	assert.ErrorIs(t, err, scaffold.ErrInvalidName)
}

func TestMake_ConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(fs, "/etc/popo.yaml", []byte("dir: models\npackage: entities\nfactory: true\n"), 0o644))

	path, err := execute(t, fs, "--config", "/etc/popo.yaml", "make", "Order")
	require.Nil(t, err)
	assert.Equal(t, "models/order.go", path)

	src, _ := afero.ReadFile(fs, path)
	assert.Contains(t, string(src), "package entities")
	assert.Contains(t, string(src), "orderFactory")

	_, err = execute(t, fs, "--config", "/etc/missing.yaml", "make", "Order")
	assert.NotNil(t, err)
}

func TestMake_Env(t *testing.T) {
	t.Setenv("POPO_DIR", "from_env")
	t.Setenv("POPO_PACKAGE", "envpkg")

	fs := afero.NewMemMapFs()

	path, err := execute(t, fs, "make", "Customer")
	require.Nil(t, err)
	assert.Equal(t, "from_env/customer.go", path)

	path, err = execute(t, fs, "make", "Customer", "--dir", "flags")
	require.Nil(t, err)
	assert.Equal(t, "flags/customer.go", path, "flag wins over env")

	src, _ := afero.ReadFile(fs, path)
	assert.Contains(t, string(src), "package envpkg")
}
