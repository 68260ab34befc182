// Package config provides configuration file and environment support for prp.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the config file at the repository root.
const ConfigFileName = ".prp.yaml"

// Config represents the prp configuration file.
type Config struct {
	Remote           *string `yaml:"remote"`
	APIURL           *string `yaml:"api_url"`
	InstructionsFile *string `yaml:"instructions_file"`
}

// LoadResult contains the loaded config and any warnings encountered.
type LoadResult struct {
	Config   *Config
	Warnings []string
}

// Load reads .prp.yaml from the given repository root.
// Returns an empty config (not an error) if the file doesn't exist.
func Load(repoRoot string) (*LoadResult, error) {
	return LoadFromPath(filepath.Join(repoRoot, ConfigFileName))
}

// LoadFromPath reads a config file and returns warnings for unknown keys.
func LoadFromPath(path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &LoadResult{Config: &Config{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	warnings := checkUnknownKeys(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}

	return &LoadResult{Config: &cfg, Warnings: warnings}, nil
}

// LoadDotEnv loads a .env file from the repository root into the process
// environment, if one exists. Existing variables are not overwritten.
func LoadDotEnv(repoRoot string) error {
	path := filepath.Join(repoRoot, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// knownKeys are the valid top-level keys in the config file.
var knownKeys = []string{"remote", "api_url", "instructions_file"}

// checkUnknownKeys checks for unknown keys in the YAML data and returns warnings.
func checkUnknownKeys(data []byte) []string {
	var warnings []string

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		// If we can't parse, let the main parser handle the error
		return nil
	}

	for key := range raw {
		if !slices.Contains(knownKeys, key) {
			warning := fmt.Sprintf("unknown key %q in %s", key, ConfigFileName)
			if suggestion := findSimilar(key, knownKeys); suggestion != "" {
				warning += fmt.Sprintf(" (did you mean %q?)", suggestion)
			}
			warnings = append(warnings, warning)
		}
	}

	return warnings
}

// findSimilar finds the most similar string from candidates using Levenshtein
// distance. Returns empty string if no candidate is within 3 edits.
func findSimilar(input string, candidates []string) string {
	const maxDistance = 3
	bestMatch := ""
	bestDistance := maxDistance + 1

	for _, candidate := range candidates {
		dist := levenshtein(input, candidate)
		if dist < bestDistance {
			bestDistance = dist
			bestMatch = candidate
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshtein calculates the Levenshtein distance between two strings.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(ra)][len(rb)]
}

// Defaults holds the built-in default values.
var Defaults = Resolved{
	Remote: "origin",
	APIURL: "",
}

// Resolved holds the final resolved configuration values.
type Resolved struct {
	Remote           string
	APIURL           string
	InstructionsFile string
}

// EnvState captures env var values and whether they were set.
type EnvState struct {
	Remote              string
	RemoteSet           bool
	APIURL              string
	APIURLSet           bool
	InstructionsFile    string
	InstructionsFileSet bool
}

// LoadEnvState reads environment variables and returns their state.
func LoadEnvState() EnvState {
	var state EnvState

	if v := os.Getenv("PRP_REMOTE"); v != "" {
		state.Remote = v
		state.RemoteSet = true
	}
	if v := os.Getenv("PRP_API_URL"); v != "" {
		state.APIURL = v
		state.APIURLSet = true
	}
	if v := os.Getenv("PRP_INSTRUCTIONS_FILE"); v != "" {
		state.InstructionsFile = v
		state.InstructionsFileSet = true
	}

	return state
}

// Resolve merges config file values with env vars.
// Precedence: env vars > config file > defaults.
func Resolve(cfg *Config, envState EnvState) Resolved {
	result := Defaults

	if cfg != nil {
		if cfg.Remote != nil {
			result.Remote = *cfg.Remote
		}
		if cfg.APIURL != nil {
			result.APIURL = *cfg.APIURL
		}
		if cfg.InstructionsFile != nil {
			result.InstructionsFile = *cfg.InstructionsFile
		}
	}

	if envState.RemoteSet {
		result.Remote = envState.Remote
	}
	if envState.APIURLSet {
		result.APIURL = envState.APIURL
	}
	if envState.InstructionsFileSet {
		result.InstructionsFile = envState.InstructionsFile
	}

	return result
}
