package classifier

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
)

var (
	componentPattern = regexp.MustCompile(`(?i)(component|widget|view)`)
	servicePattern   = regexp.MustCompile(`(?i)(service|api|controller)`)
	docExtPattern    = regexp.MustCompile(`(?i)\.(md|txt|rst)$`)
	nonMainPattern   = regexp.MustCompile(`(?i)(test|spec|\.md$|\.txt$)`)
)

// fileGroups particiona los archivos del commit para elegir el template
// de descripción: componentes, servicios, documentación y "main" (todo
// lo que no es test ni doc).
type fileGroups struct {
	components []string
	services   []string
	docs       []string
	main       []string
}

func groupFiles(files []string) fileGroups {
	var groups fileGroups
	for _, file := range files {
		if componentPattern.MatchString(file) {
			groups.components = append(groups.components, file)
		}
		if servicePattern.MatchString(file) {
			groups.services = append(groups.services, file)
		}
		if docExtPattern.MatchString(file) {
			groups.docs = append(groups.docs, file)
		}
		if !nonMainPattern.MatchString(file) {
			groups.main = append(groups.main, file)
		}
	}
	return groups
}

// GenerateDescription compone una frase corta para la categoría ganadora.
// El resultado va en minúsculas y sin punto final, pensado para ir
// después de "type: " en el subject de un conventional commit.
func (d *Detector) GenerateDescription(commitType models.CommitType, files []string) string {
	groups := groupFiles(files)

	switch commitType {
	case models.TypeFeat:
		if len(groups.components) > 0 {
			return fmt.Sprintf("add new %s component", baseName(groups.components[0]))
		}
		if len(groups.services) > 0 {
			return fmt.Sprintf("implement %s service", baseName(groups.services[0]))
		}
		return "add new functionality"
	case models.TypeFix:
		target := "application"
		if len(groups.main) > 0 {
			target = baseName(groups.main[0])
		}
		return fmt.Sprintf("resolve issue in %s", target)
	case models.TypeDocs:
		if len(groups.docs) == 1 {
			return fmt.Sprintf("update %s", filepath.Base(groups.docs[0]))
		}
		return fmt.Sprintf("update documentation (%d files)", len(groups.docs))
	case models.TypeStyle:
		return "update styling and formatting"
	case models.TypeRefactor:
		return "refactor code structure"
	case models.TypeTest:
		return "add/update tests"
	case models.TypeBuild:
		return "update build configuration"
	case models.TypeCI:
		return "update CI/CD configuration"
	default:
		return fmt.Sprintf("update %d file(s)", len(files))
	}
}

// baseName devuelve el nombre del archivo sin directorio ni extensión,
// en minúsculas.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}
