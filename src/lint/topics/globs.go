package topics

// File globs shared by topic fragments.
const (
	GlobSrc   = "**/*.{js,mjs,cjs,jsx,ts,mts,cts,tsx}"
	GlobJS    = "**/*.{js,mjs,cjs}"
	GlobTS    = "**/*.{ts,mts,cts}"
	GlobTSX   = "**/*.tsx"
	GlobReact = "**/*.{jsx,tsx}"
	GlobVue   = "**/*.vue"
	GlobJSON  = "**/*.json"
	GlobJSON5 = "**/*.json5"
	GlobJSONC = "**/*.jsonc"
)

// GlobExclude is the built-in ignore list of the ignores topic.
var GlobExclude = []string{
	"**/node_modules",
	"**/dist",
	"**/package-lock.json",
	"**/yarn.lock",
	"**/pnpm-lock.yaml",
	"**/bun.lockb",

	"**/output",
	"**/coverage",
	"**/temp",
	"**/.temp",
	"**/tmp",
	"**/.tmp",
	"**/.history",
	"**/.vitepress/cache",
	"**/.nuxt",
	"**/.next",
	"**/.svelte-kit",
	"**/.vercel",
	"**/.changeset",
	"**/.idea",
	"**/.cache",
	"**/.output",
	"**/.vite-inspect",
	"**/.yarn",
	"**/vite.config.*.timestamp-*",

	"**/CHANGELOG*.md",
	"**/*.min.*",
	"**/LICENSE*",
	"**/__snapshots__",
	"**/auto-import{,s}.d.ts",
	"**/components.d.ts",
}
