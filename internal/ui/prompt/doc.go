// Package prompt provides small interactive terminal prompts.
package prompt
