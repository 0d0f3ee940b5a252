package definition_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myg844/call-fsm/internal/testutils"
	"github.com/myg844/call-fsm/pkg/definition"
)

const chargerYAML = `
name: charger
capacity: 4
initial: idle
states:
  - name: idle
    exec: wait_for_plug
  - name: charging
    init: open_session
    exec: pump
  - name: full
transitions:
  - from: idle
    to: charging
    check: plugged_in
  - name: topped_up
    from: charging
    to: full
    check: soc_at_least
    check_args:
      percent: 95
    done: close_session
on_error:
  exec: back_to_idle
`

const chargerTOML = `
name = "charger"
initial = "idle"

[[states]]
name = "idle"
exec = "wait_for_plug"

[[states]]
name = "charging"
init = "open_session"

[[transitions]]
from = "idle"
to = "charging"
check = "plugged_in"

[on_error]
exec = "back_to_idle"
`

func TestParse_YAML(t *testing.T) {
	def, err := definition.Parse([]byte(chargerYAML), definition.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "charger", def.Name)
	assert.Equal(t, 4, def.Capacity)
	assert.Equal(t, "idle", def.Initial)
	require.Len(t, def.States, 3)
	assert.Equal(t, "open_session", def.States[1].Init)

	require.Len(t, def.Transitions, 2)
	assert.Equal(t, "idle__charging", def.Transitions[0].DisplayName())
	assert.Equal(t, "topped_up", def.Transitions[1].DisplayName())
	assert.EqualValues(t, 95, def.Transitions[1].CheckArgs["percent"])

	require.NotNil(t, def.OnError)
	assert.Equal(t, "back_to_idle", def.OnError.Exec)
}

func TestParse_TOML(t *testing.T) {
	def, err := definition.Parse([]byte(chargerTOML), definition.FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "charger", def.Name)
	require.Len(t, def.States, 2)
	assert.Equal(t, "wait_for_plug", def.States[0].Exec)
	require.Len(t, def.Transitions, 1)
	assert.Equal(t, "plugged_in", def.Transitions[0].Check)
	require.NotNil(t, def.OnError)
}

func TestParse_Malformed(t *testing.T) {
	_, err := definition.Parse([]byte("states: ["), definition.FormatYAML)
	assert.ErrorContains(t, err, "parse yaml definition")

	_, err = definition.Parse([]byte("states = ["), definition.FormatTOML)
	assert.ErrorContains(t, err, "parse toml definition")

	_, err = definition.Parse(nil, definition.Format("ini"))
	assert.ErrorContains(t, err, "unsupported definition format")
}

func TestEffectiveCapacity(t *testing.T) {
	def := &definition.Definition{States: []definition.State{{Name: "a"}, {Name: "b"}}}
	assert.Equal(t, 2, def.EffectiveCapacity())

	def.Capacity = 8
	assert.Equal(t, 8, def.EffectiveCapacity())
}

func TestLoad_PicksFormatFromExtension(t *testing.T) {
	yamlPath := testutils.WriteDefinition(t, "charger.yaml", chargerYAML)
	tomlPath := testutils.WriteDefinition(t, "charger.toml", chargerTOML)

	fromYAML, err := definition.Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "charger", fromYAML.Name)

	fromTOML, err := definition.Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "charger", fromTOML.Name)
}

func TestLoad_Errors(t *testing.T) {
	_, err := definition.Load("charger.json")
	assert.ErrorContains(t, err, "unsupported definition file extension")

	_, err = definition.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read definition")
}
