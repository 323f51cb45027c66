package models

// CommitType es una de las once categorías de conventional commits
// que el clasificador puede emitir. El set es cerrado: las herramientas
// downstream (validadores de mensajes, generadores de changelog) hacen
// match exacto sobre estos tokens.
type CommitType string

const (
	TypeFeat     CommitType = "feat"
	TypeFix      CommitType = "fix"
	TypeDocs     CommitType = "docs"
	TypeStyle    CommitType = "style"
	TypeRefactor CommitType = "refactor"
	TypePerf     CommitType = "perf"
	TypeTest     CommitType = "test"
	TypeBuild    CommitType = "build"
	TypeCI       CommitType = "ci"
	TypeChore    CommitType = "chore"
	TypeRevert   CommitType = "revert"
)

// AllCommitTypes lista las categorías en orden estable. Cada categoría
// tiene siempre un score definido (default 0) para que el argmax sea total.
var AllCommitTypes = []CommitType{
	TypeFeat, TypeFix, TypeDocs, TypeStyle, TypeRefactor, TypePerf,
	TypeTest, TypeBuild, TypeCI, TypeChore, TypeRevert,
}

// IsValidCommitType indica si s es uno de los once tokens válidos.
func IsValidCommitType(s string) bool {
	for _, t := range AllCommitTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

type (
	// ChangeSet es la partición estándar del change-set pendiente:
	// staged (pendiente de commit), modified (editado sin stagear) y
	// added (paths nuevos en el índice). Se recalcula en cada invocación.
	ChangeSet struct {
		Staged   []string
		Modified []string
		Added    []string
	}

	// Detection es el resultado del clasificador: categoría ganadora,
	// confianza heurística en [0, 1] y una traza legible del porqué.
	Detection struct {
		Type       CommitType
		Confidence float64
		Reason     string
	}

	// ScoreResult es el resultado intermedio de un scorer individual
	// (patrones de archivos o keywords del diff), con los scores de
	// todas las categorías para poder combinarlos después.
	ScoreResult struct {
		Type       CommitType
		Confidence float64
		Reason     string
		AllScores  map[CommitType]float64
	}

	CommitSuggestion struct {
		CommitTitle string
		Explanation string
		Files       []string
		Detection   Detection
	}
)

// AllFiles devuelve la unión deduplicada de staged + modified,
// preservando el orden de aparición.
func (c ChangeSet) AllFiles() []string {
	seen := make(map[string]struct{}, len(c.Staged)+len(c.Modified))
	files := make([]string, 0, len(c.Staged)+len(c.Modified))
	for _, group := range [][]string{c.Staged, c.Modified} {
		for _, f := range group {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			files = append(files, f)
		}
	}
	return files
}

// IsEmpty indica que no hay ningún cambio pendiente.
func (c ChangeSet) IsEmpty() bool {
	return len(c.Staged) == 0 && len(c.Modified) == 0 && len(c.Added) == 0
}
