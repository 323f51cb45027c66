package errors

import "fmt"

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// GitCommandError indica que un comando de git falló. El clasificador lo
// trata como "sin datos"; solo los comandos de escritura lo propagan.
type GitCommandError struct {
	Command string
	Err     error
}

func (e *GitCommandError) Error() string {
	return fmt.Sprintf("el comando 'git %s' falló: %v", e.Command, e.Err)
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError crea un nuevo error de comando git
func NewGitCommandError(command string, err error) *GitCommandError {
	return &GitCommandError{Command: command, Err: err}
}

// VCSProviderNotConfiguredError indica que un proveedor VCS no está configurado
type VCSProviderNotConfiguredError struct {
	Provider string
}

func (e *VCSProviderNotConfiguredError) Error() string {
	return fmt.Sprintf("Proveedor VCS '%s' detectado pero no configurado", e.Provider)
}

// NewVCSProviderNotConfiguredError crea un nuevo error de proveedor VCS no configurado
func NewVCSProviderNotConfiguredError(provider string) *VCSProviderNotConfiguredError {
	return &VCSProviderNotConfiguredError{Provider: provider}
}

// InvalidVersionError indica que una versión no tiene formato semver válido
type InvalidVersionError struct {
	Version string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("formato de versión no válido: %s", e.Version)
}

// NewInvalidVersionError crea un nuevo error de versión inválida
func NewInvalidVersionError(version string) *InvalidVersionError {
	return &InvalidVersionError{Version: version}
}
