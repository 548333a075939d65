// Package catalog holds the fixed descriptor registry mapping
// human-readable labels to backend model identifiers for both the
// cloud (Groq) and local (Ollama) catalogs. The catalogs are defined
// at process start and never mutated.
package catalog

import "github.com/cecil-the-coder/summary-kit/pkg/types"

// ProviderNameCloud and ProviderNameLocal are the origin strings
// reported in summary outcomes.
const (
	ProviderNameCloud = "Groq (Cloud)"
	ProviderNameLocal = "Ollama (Local)"
)

var cloudModels = []types.ProviderDescriptor{
	{Label: "Groq - Llama 3.1 70B", BackendModelID: "llama-3.1-70b-versatile", DisplayName: "Llama 3.1 70B", Origin: "Meta", Kind: types.KindCloud},
	{Label: "Groq - Llama 3.1 8B", BackendModelID: "llama-3.1-8b-instant", DisplayName: "Llama 3.1 8B", Origin: "Meta", Kind: types.KindCloud},
	{Label: "Groq - Llama 3 70B", BackendModelID: "llama3-70b-8192", DisplayName: "Llama 3 70B", Origin: "Meta", Kind: types.KindCloud},
	{Label: "Groq - Llama 3 8B", BackendModelID: "llama3-8b-8192", DisplayName: "Llama 3 8B", Origin: "Meta", Kind: types.KindCloud},
	{Label: "Groq - Mixtral 8x7B", BackendModelID: "mixtral-8x7b-32768", DisplayName: "Mixtral 8x7B", Origin: "Mistral AI", Kind: types.KindCloud},
	{Label: "Groq - Gemma 7B", BackendModelID: "gemma-7b-it", DisplayName: "Gemma 7B", Origin: "Google", Kind: types.KindCloud},
	{Label: "Groq - Gemma 2 9B", BackendModelID: "gemma2-9b-it", DisplayName: "Gemma 2 9B", Origin: "Google", Kind: types.KindCloud},
}

var localModels = []types.ProviderDescriptor{
	{Label: "Ollama - Llama 3.1 8B", BackendModelID: "llama3.1:8b", DisplayName: "Llama 3.1 8B", Origin: "Meta", Kind: types.KindLocal},
	{Label: "Ollama - Llama 3.1 70B", BackendModelID: "llama3.1:70b", DisplayName: "Llama 3.1 70B", Origin: "Meta", Kind: types.KindLocal},
	{Label: "Ollama - Llama 3 8B", BackendModelID: "llama3:8b", DisplayName: "Llama 3 8B", Origin: "Meta", Kind: types.KindLocal},
	{Label: "Ollama - Mistral 7B", BackendModelID: "mistral:7b", DisplayName: "Mistral 7B", Origin: "Mistral AI", Kind: types.KindLocal},
	{Label: "Ollama - Gemma 7B", BackendModelID: "gemma:7b", DisplayName: "Gemma 7B", Origin: "Google", Kind: types.KindLocal},
	{Label: "Ollama - Gemma 2 9B", BackendModelID: "gemma2:9b", DisplayName: "Gemma 2 9B", Origin: "Google", Kind: types.KindLocal},
	{Label: "Ollama - Phi-3 Mini", BackendModelID: "phi3:mini", DisplayName: "Phi-3 Mini", Origin: "Microsoft", Kind: types.KindLocal},
	{Label: "Ollama - CodeLlama 7B", BackendModelID: "codellama:7b", DisplayName: "CodeLlama 7B", Origin: "Meta", Kind: types.KindLocal},
	{Label: "Ollama - Neural Chat 7B", BackendModelID: "neural-chat:7b", DisplayName: "Neural Chat 7B", Origin: "Intel", Kind: types.KindLocal},
}

// CloudModels returns the cloud catalog in definition order.
func CloudModels() []types.ProviderDescriptor {
	return append([]types.ProviderDescriptor(nil), cloudModels...)
}

// LocalModels returns the local catalog in definition order.
func LocalModels() []types.ProviderDescriptor {
	return append([]types.ProviderDescriptor(nil), localModels...)
}

// All returns the full catalog: cloud models followed by local models,
// each in definition order.
func All() []types.ProviderDescriptor {
	all := make([]types.ProviderDescriptor, 0, len(cloudModels)+len(localModels))
	all = append(all, cloudModels...)
	all = append(all, localModels...)
	return all
}

// Lookup finds the descriptor for a label in either catalog. The second
// return value is false when the label is unknown; callers must check it.
func Lookup(label string) (types.ProviderDescriptor, bool) {
	for _, d := range cloudModels {
		if d.Label == label {
			return d, true
		}
	}
	for _, d := range localModels {
		if d.Label == label {
			return d, true
		}
	}
	return types.ProviderDescriptor{}, false
}
