package config

// Weftfile represents the structure of the weft.yaml manifest file.
type Weftfile struct {
	Version    string                  `yaml:"version"`
	Generated  []string                `yaml:"generated"`
	Components map[string]ComponentDTO `yaml:"components"`
	Modules    map[string]ModuleDTO    `yaml:"modules"`
}

// ComponentDTO represents a component declaration in the manifest.
type ComponentDTO struct {
	Modules           []string    `yaml:"modules"`
	Provisions        []MethodDTO `yaml:"provisions"`
	Productions       []MethodDTO `yaml:"productions"`
	MembersInjections []MethodDTO `yaml:"membersInjections"`
}

// MethodDTO represents one accessor method of a component.
type MethodDTO struct {
	Name      string     `yaml:"name"`
	Returns   string     `yaml:"returns"`
	Qualifier string     `yaml:"qualifier"`
	Nullable  bool       `yaml:"nullable"`
	Params    []ParamDTO `yaml:"params"`
}

// ModuleDTO represents a module declaration in the manifest.
type ModuleDTO struct {
	Bindings []BindingDTO `yaml:"bindings"`
}

// BindingDTO represents one binding declaration inside a module.
type BindingDTO struct {
	Name         string     `yaml:"name"`
	Provides     string     `yaml:"provides"`
	Qualifier    string     `yaml:"qualifier"`
	Production   bool       `yaml:"production"`
	Optional     bool       `yaml:"optional"`
	Contribution string     `yaml:"contribution"`
	Params       []ParamDTO `yaml:"params"`
}

// ParamDTO represents one declared parameter.
type ParamDTO struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Qualifier string `yaml:"qualifier"`
	Nullable  bool   `yaml:"nullable"`
}
