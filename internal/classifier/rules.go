package classifier

import (
	"regexp"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
)

// Tuning agrupa las constantes heurísticas del clasificador. Los valores
// por defecto se conservan tal cual del afinado original: no derivan de
// ningún modelo probabilístico, así que cambiarlos es un cambio de
// comportamiento, no un fix.
type Tuning struct {
	// FileWeight y ContentWeight combinan linealmente los dos scorers.
	FileWeight    float64
	ContentWeight float64
	// KeywordHitScore es el incremento por cada ocurrencia de keyword en el diff.
	KeywordHitScore float64
	// NewSourceFileBonus se suma a feat cuando hay archivos fuente nuevos.
	NewSourceFileBonus float64
	// ContentNormalizer divide el score ganador del content scorer.
	ContentNormalizer float64
	// CombinedNormalizer divide el score combinado ganador antes del clamp a 1.
	CombinedNormalizer float64
	// FallbackThreshold: debajo de esta confianza combinada se usa la
	// cadena de fallback en vez del combinador.
	FallbackThreshold float64
}

// DefaultTuning devuelve las constantes de afinado originales.
func DefaultTuning() Tuning {
	return Tuning{
		FileWeight:         0.7,
		ContentWeight:      0.3,
		KeywordHitScore:    0.5,
		NewSourceFileBonus: 2,
		ContentNormalizer:  10,
		CombinedNormalizer: 3,
		FallbackThreshold:  0.3,
	}
}

// Rules son las tablas de reglas del clasificador: patrones de path y
// keywords por categoría, más los patrones de línea específicos de fix.
// Son inmutables después de construidas; agregar soporte para un lenguaje
// o framework es agregar patrones, nunca tocar el scoring.
type Rules struct {
	pathPatterns map[models.CommitType][]*regexp.Regexp
	keywords     map[models.CommitType][]*regexp.Regexp
	// fixRemovedLine matchea líneas eliminadas con palabras de bug;
	// fixAddedLine matchea líneas agregadas con palabras de corrección.
	// Cada match completo suma 1 al content-score de fix.
	fixRemovedLine *regexp.Regexp
	fixAddedLine   *regexp.Regexp
	// sourceExtensions define qué extensiones cuentan como "código fuente"
	// para el bonus de archivos nuevos.
	sourceExtensions map[string]struct{}
}

var sourceExtensionList = []string{
	"js", "ts", "jsx", "tsx", "py", "go", "rs", "php", "java", "c", "cpp", "cs",
}

// DefaultRules construye las tablas de reglas estándar. Se construyen una
// sola vez al inicio del proceso y se inyectan en el detector.
func DefaultRules() *Rules {
	pathPatterns := map[models.CommitType][]string{
		models.TypeFeat: {
			`(^|/)src/`,
			`(^|/)lib/`,
			`(^|/)app/`,
			`(^|/)components?/`,
			`(^|/)pages?/`,
			`(^|/)views?/`,
			`(^|/)features?/`,
			`(^|/)handlers?/`,
			`(^|/)services?/`,
		},
		models.TypeFix: {
			`(?i)(^|/)(hotfix|bugfix|fix)e?s?/`,
			`(?i)\bpatch`,
		},
		models.TypeDocs: {
			`(?i)\.(md|txt|rst|adoc)$`,
			`(?i)(^|/)docs?/`,
			`(?i)readme`,
			`(?i)changelog`,
			`(?i)license`,
			`(?i)contributing`,
		},
		models.TypeStyle: {
			`(?i)\.(css|scss|sass|less|styl)$`,
			`(?i)\.prettierrc`,
			`(?i)\.editorconfig`,
			`(?i)\.stylelintrc`,
		},
		models.TypeRefactor: {
			`(?i)(^|/)refactor`,
		},
		models.TypePerf: {
			`(?i)(^|/)(perf|benchmarks?)/`,
			`(?i)_bench_test\.go$`,
			`(?i)\.bench\.`,
		},
		models.TypeTest: {
			`(?i)\.(test|spec)\.[jt]sx?$`,
			`_test\.go$`,
			`(?i)(^|/)(tests?|spec|__tests__|__mocks__)/`,
			`(?i)(^|/)e2e/`,
			`(?i)(^|/)conftest\.py$`,
			`(?i)test_.*\.py$`,
		},
		models.TypeBuild: {
			`(^|/)package(-lock)?\.json$`,
			`(^|/)yarn\.lock$`,
			`(^|/)pnpm-lock\.yaml$`,
			`(^|/)go\.(mod|sum)$`,
			`(^|/)Cargo\.(toml|lock)$`,
			`(^|/)requirements.*\.txt$`,
			`(^|/)pyproject\.toml$`,
			`(^|/)setup\.py$`,
			`(?i)(^|/)(Makefile|Dockerfile|docker-compose.*\.ya?ml)$`,
			`(?i)(webpack|rollup|vite|babel|tsconfig|gulpfile)[^/]*\.(js|ts|json)$`,
			`(^|/)pom\.xml$`,
			`\.gradle$`,
		},
		models.TypeCI: {
			`^\.github/workflows/`,
			`^\.github/actions/`,
			`\.gitlab-ci\.ya?ml$`,
			`(^|/)Jenkinsfile$`,
			`^\.circleci/`,
			`^\.travis\.ya?ml$`,
			`(^|/)azure-pipelines\.ya?ml$`,
		},
		models.TypeChore: {
			`^\.[^/]+rc(\.[^/]+)?$`,
			`^\.(gitignore|gitattributes|npmrc|nvmrc|tool-versions|env[^/]*)$`,
			`(?i)(^|/)config/`,
			`(?i)\.(ya?ml|toml|ini|conf|cfg)$`,
			`(?i)(^|/)scripts?/`,
			`(?i)\.githooks/`,
		},
		models.TypeRevert: {
			`(?i)revert`,
		},
	}

	keywords := map[models.CommitType][]string{
		models.TypeFeat:     {"add", "new", "create", "implement", "introduce", "feature", "support", "enable"},
		models.TypeFix:      {"fix", "bug", "error", "issue", "resolve", "problem", "crash", "broken", "patch", "fail"},
		models.TypeDocs:     {"documentation", "changelog", "comment", "typo", "clarify"},
		models.TypeStyle:    {"style", "format", "formatting", "lint", "prettier", "whitespace", "indent", "semicolon"},
		models.TypeRefactor: {"refactor", "restructure", "rename", "cleanup", "simplify", "extract", "reorganize"},
		models.TypePerf:     {"performance", "optimize", "optimization", "speed", "faster", "cache", "benchmark", "memory"},
		models.TypeTest:     {"test", "spec", "coverage", "mock", "assert", "expect", "fixture"},
		models.TypeBuild:    {"build", "webpack", "rollup", "vite", "dependency", "dependencies", "package", "compile", "bundle", "version"},
		models.TypeCI:       {"ci", "pipeline", "workflow", "action", "deploy", "deployment", "jenkins", "travis"},
		models.TypeChore:    {"chore", "config", "configuration", "update", "bump", "gitignore", "eslint", "ignore", "tooling"},
		models.TypeRevert:   {"revert", "rollback", "undo"},
	}

	compiledPaths := make(map[models.CommitType][]*regexp.Regexp, len(pathPatterns))
	for commitType, patterns := range pathPatterns {
		compiled := make([]*regexp.Regexp, 0, len(patterns))
		for _, p := range patterns {
			compiled = append(compiled, regexp.MustCompile(p))
		}
		compiledPaths[commitType] = compiled
	}

	compiledKeywords := make(map[models.CommitType][]*regexp.Regexp, len(keywords))
	for commitType, words := range keywords {
		compiled := make([]*regexp.Regexp, 0, len(words))
		for _, w := range words {
			// match de palabra completa, case-insensitive; las repeticiones cuentan
			compiled = append(compiled, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(w)+`\b`))
		}
		compiledKeywords[commitType] = compiled
	}

	sourceExts := make(map[string]struct{}, len(sourceExtensionList))
	for _, ext := range sourceExtensionList {
		sourceExts[ext] = struct{}{}
	}

	return &Rules{
		pathPatterns:     compiledPaths,
		keywords:         compiledKeywords,
		fixRemovedLine:   regexp.MustCompile(`(?im)^-.*\b(bug|error|crash|exception|failure|broken)\b`),
		fixAddedLine:     regexp.MustCompile(`(?im)^\+.*\b(fix(es|ed)?|resolve[sd]?|correct(s|ed)?|patch(es|ed)?)\b`),
		sourceExtensions: sourceExts,
	}
}

// IsSourceExtension indica si la extensión (sin punto) cuenta como código fuente.
func (r *Rules) IsSourceExtension(ext string) bool {
	_, ok := r.sourceExtensions[ext]
	return ok
}
