package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/geoanla/internal/core"
)

// setup writes the reference data and isolates the environment the tool
// reads.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "municipios.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,nombre\n5001,Medellín\n76001,Cali\n"), 0o600))

	t.Setenv("CATALOG_SUBDIVISIONS_PATH", path)
	t.Setenv("CATALOG_DICTIONARIES_PATH", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_URL", "")
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSchemasCmd(t *testing.T) {
	out, err := execute(t, "schemas")
	require.NoError(t, err)
	assert.Contains(t, out, "PuntoMuestreoFlora")
	assert.Contains(t, out, "Seg_IndicadoresTB")

	out, err = execute(t, "schemas", "PuntoMuestreoFlora")
	require.NoError(t, err)
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "rule")

	_, err = execute(t, "schemas", "Nope")
	assert.ErrorIs(t, err, core.ErrSchemaNotFound)
}

func TestDomainCmd(t *testing.T) {
	subs := setup(t)

	out, err := execute(t, "domain", "--subdivisions", subs)
	require.NoError(t, err)
	assert.Contains(t, out, "Dom_Municipio")

	out, err = execute(t, "domain", "Dom_Municipio")
	require.NoError(t, err)
	assert.Contains(t, out, "05001")
	assert.Contains(t, out, "Medellín")

	out, err = execute(t, "domain", "Dom_Municipio", "cali")
	require.NoError(t, err)
	assert.Contains(t, out, "76001")

	_, err = execute(t, "domain", "Dom_Municipio", "Pasto")
	assert.Error(t, err)

	_, err = execute(t, "domain", "Dom_Nope")
	assert.ErrorIs(t, err, core.ErrDomainNotFound)
}

func TestValidateCmd(t *testing.T) {
	setup(t)
	file := writeFile(t, "muestras.csv", "ID_MUEST;OBSERVACION\nM-01;sin datos\n")

	out, err := execute(t, "validate", "--schema", "PuntoMuestreoFlora", "--file", file, "--offset", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "PuntoMuestreoFlora: 1 rows, 0 accepted, 1 rejected")
	assert.Contains(t, out, "row 10 (M-01)")

	_, err = execute(t, "validate", "--schema", "PuntoMuestreoFlora", "--file", file, "--fail-on-errors")
	assert.ErrorIs(t, err, errRejected)

	out, err = execute(t, "validate", "--schema", "PuntoMuestreoFlora", "--file", file, "--json")
	require.NoError(t, err)
	var res core.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 0, res.Errors[0].Row)
}

func TestValidateCmd_Fatal(t *testing.T) {
	setup(t)
	file := writeFile(t, "muestras.csv", "ID_MUEST\nM-01\n")

	_, err := execute(t, "validate", "--schema", "Nope", "--file", file)
	assert.ErrorIs(t, err, core.ErrSchemaNotFound)

	_, err = execute(t, "validate", "--schema", "PuntoMuestreoFlora", "--file", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = execute(t, "validate", "--schema", "PuntoMuestreoFlora", "--file", file, "--format", "shp")
	assert.ErrorIs(t, err, core.ErrUnsupportedSource)

	_, err = execute(t, "validate", "--schema", "PuntoMuestreoFlora", "--file", file, "--offset", "-1")
	assert.Error(t, err)

	_, err = execute(t, "validate", "--file", file)
	assert.Error(t, err, "schema flag is required")
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("-75.57, 6.25")
	require.NoError(t, err)
	assert.Equal(t, -75.57, p.Lon())
	assert.Equal(t, 6.25, p.Lat())

	for _, bad := range []string{"-75.57", "a,b", "200,0", "0,-91"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}
