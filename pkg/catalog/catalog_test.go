package catalog

import (
	"testing"

	"github.com/cecil-the-coder/summary-kit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_CloudThenLocalInDefinitionOrder(t *testing.T) {
	all := All()

	require.Len(t, all, len(CloudModels())+len(LocalModels()))
	assert.Equal(t, "Groq - Llama 3.1 70B", all[0].Label)
	assert.Equal(t, "Ollama - Llama 3.1 8B", all[len(CloudModels())].Label)
	assert.Equal(t, "Ollama - Neural Chat 7B", all[len(all)-1].Label)

	for i, d := range all {
		if i < len(CloudModels()) {
			assert.Equal(t, types.KindCloud, d.Kind, d.Label)
		} else {
			assert.Equal(t, types.KindLocal, d.Kind, d.Label)
		}
	}
}

func TestAll_LabelsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range All() {
		assert.False(t, seen[d.Label], "duplicate label %q", d.Label)
		seen[d.Label] = true
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		label   string
		modelID string
		kind    types.ProviderKind
		found   bool
	}{
		{"Groq - Mixtral 8x7B", "mixtral-8x7b-32768", types.KindCloud, true},
		{"Ollama - Phi-3 Mini", "phi3:mini", types.KindLocal, true},
		{"Groq - Llama 3.1 8B", "llama-3.1-8b-instant", types.KindCloud, true},
		{"Nonexistent Model", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			d, ok := Lookup(tt.label)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.modelID, d.BackendModelID)
				assert.Equal(t, tt.kind, d.Kind)
			}
		})
	}
}

func TestCloudModels_ReturnsCopy(t *testing.T) {
	first := CloudModels()
	first[0].Label = "mutated"

	assert.Equal(t, "Groq - Llama 3.1 70B", CloudModels()[0].Label)
}
