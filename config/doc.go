// Package config loads client settings from YAML files and environment
// variables.
//
// It uses Viper for file parsing and env binding, and godotenv for .env
// files. Precedence, lowest to highest: YAML file, .env file, process
// environment. Environment variables use the VLLM_ prefix with
// underscore-separated paths (e.g., VLLM_BASE_URL, VLLM_PARAMS_TEMPERATURE).
package config
