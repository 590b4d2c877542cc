package topics

import (
	"os"

	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("typescript", priorityTypescript, func() lint.Topic { return &typescriptTopic{} })
}

var typescriptRules = lazyTable("typescript.yaml")

type typescriptTopic struct{}

func (t *typescriptTopic) Name() string         { return "typescript" }
func (t *typescriptTopic) DefaultEnabled() bool { return false }
func (t *typescriptTopic) AutoDetect() []detect.Requirement {
	return []detect.Requirement{detect.Require("typescript")}
}

// Build honors the "tsconfigRootDir" setting; it defaults to the working
// directory, matching where the linter resolves tsconfig.json from.
func (t *typescriptTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	rootDir := lint.GetOption(opts.Settings, "tsconfigRootDir", "")
	if rootDir == "" {
		if wd, err := os.Getwd(); err == nil {
			rootDir = wd
		} else {
			rootDir = "."
		}
	}

	house := lint.Rules{
		"no-dupe-class-members":                          lint.Off(),
		"no-redeclare":                                   lint.Off(),
		"no-use-before-define":                           lint.Off(),
		"no-useless-constructor":                         lint.Off(),
		"@typescript-eslint/ban-ts-comment":              lint.Entry(lint.SeverityError, map[string]any{"ts-expect-error": "allow-with-description"}),
		"@typescript-eslint/consistent-type-definitions": lint.Entry(lint.SeverityError, "interface"),
		"@typescript-eslint/consistent-type-imports": lint.Entry(lint.SeverityError, map[string]any{
			"disallowTypeAnnotations": false,
			"fixStyle":                "separate-type-imports",
			"prefer":                  "type-imports",
		}),
		"@typescript-eslint/method-signature-style":      lint.Entry(lint.SeverityError, "property"),
		"@typescript-eslint/no-dupe-class-members":       lint.Error(),
		"@typescript-eslint/no-dynamic-delete":           lint.Off(),
		"@typescript-eslint/no-empty-object-type":        lint.Entry(lint.SeverityError, map[string]any{"allowInterfaces": "always"}),
		"@typescript-eslint/no-explicit-any":             lint.Off(),
		"@typescript-eslint/no-extraneous-class":         lint.Off(),
		"@typescript-eslint/no-import-type-side-effects": lint.Error(),
		"@typescript-eslint/no-invalid-void-type":        lint.Off(),
		"@typescript-eslint/no-non-null-assertion":       lint.Off(),
		"@typescript-eslint/no-redeclare":                lint.Entry(lint.SeverityError, map[string]any{"builtinGlobals": false}),
		"@typescript-eslint/no-require-imports":          lint.Error(),
		"@typescript-eslint/no-unused-expressions": lint.Entry(lint.SeverityError, map[string]any{
			"allowShortCircuit":    true,
			"allowTaggedTemplates": true,
			"allowTernary":         true,
		}),
		"@typescript-eslint/no-unused-vars":          lint.Off(),
		"@typescript-eslint/no-use-before-define":    lint.Entry(lint.SeverityError, map[string]any{"classes": false, "functions": false, "variables": true}),
		"@typescript-eslint/no-useless-constructor":  lint.Off(),
		"@typescript-eslint/no-wrapper-object-types": lint.Error(),
		"@typescript-eslint/triple-slash-reference":  lint.Off(),
		"@typescript-eslint/unified-signatures":      lint.Off(),
	}

	return []lint.Fragment{{
		Name:  fragmentName("typescript", "rules"),
		Files: []string{GlobTS, GlobTSX},
		LanguageOptions: map[string]any{
			"parser": "@typescript-eslint/parser",
			"parserOptions": map[string]any{
				"projectService": map[string]any{
					"allowDefaultProject": []any{"*.js", "*.mjs"},
				},
				"tsconfigRootDir": rootDir,
			},
		},
		Plugins: map[string]lint.Plugin{
			"@typescript-eslint": plugin("@typescript-eslint/eslint-plugin"),
		},
		Rules: lint.Merge(typescriptRules(), house, opts.Overrides),
	}}
}
