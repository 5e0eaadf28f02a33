// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: preview/language.go
// Summary: Language inference for the manifest preview pane.

package preview

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// defaultLanguage is used when nothing else matches. Manifests are
// JSON more often than not.
const defaultLanguage = "json"

// Language is an inference result. Name is a lowercase lexer name.
type Language struct {
	Name   string
	Method string // filename, shebang, heuristic, classifier or default
}

// classifierCandidates bounds the Bayesian classifier to languages the
// preview is likely to see. go-enry's classifier needs a candidate set.
var classifierCandidates = []string{
	"Go", "Python", "Rust", "JavaScript", "TypeScript", "Java", "C", "C++",
	"Shell", "Ruby", "PHP", "JSON", "YAML", "TOML", "XML", "Markdown",
	"SQL", "Lua", "Perl",
}

var reYAMLKey = regexp.MustCompile(`^\s*[\w.-]+\s*:\s+.*$`)

// Infer guesses the language of src. filename is an optional hint and
// wins when its extension is known.
func Infer(filename string, src []byte) Language {
	if filename != "" {
		if lang, _ := enry.GetLanguageByFilename(filename); lang != enry.OtherLanguage {
			return Language{Name: normalize(lang), Method: "filename"}
		}
		if lang, _ := enry.GetLanguageByExtension(filename); lang != enry.OtherLanguage {
			return Language{Name: normalize(lang), Method: "filename"}
		}
	}
	if lang, _ := enry.GetLanguageByShebang(src); lang != enry.OtherLanguage {
		return Language{Name: normalize(lang), Method: "shebang"}
	}
	if lang, ok := heuristicLanguage(string(src)); ok {
		return Language{Name: lang, Method: "heuristic"}
	}
	if len(bytes.TrimSpace(src)) > 0 {
		if lang, _ := enry.GetLanguageByClassifier(src, classifierCandidates); lang != enry.OtherLanguage {
			return Language{Name: normalize(lang), Method: "classifier"}
		}
	}
	return Language{Name: defaultLanguage, Method: "default"}
}

// heuristicLanguage fast-paths the formats manifests actually come in,
// plus Go (the classifier confuses it with C-family code).
func heuristicLanguage(text string) (string, bool) {
	trim := strings.TrimSpace(text)
	if trim == "" {
		return "", false
	}
	switch trim[0] {
	case '{', '[':
		return "json", true
	case '<':
		return "xml", true
	}
	if strings.HasPrefix(trim, "---") {
		return "yaml", true
	}
	if strings.Contains(text, "package ") && strings.Contains(text, "func ") {
		return "go", true
	}
	keyLines := 0
	for _, ln := range strings.Split(text, "\n") {
		if reYAMLKey.MatchString(ln) {
			keyLines++
		}
	}
	if keyLines >= 2 {
		return "yaml", true
	}
	return "", false
}

func normalize(lang string) string {
	return strings.ToLower(lang)
}
