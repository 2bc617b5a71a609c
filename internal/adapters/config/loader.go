// Package config loads and validates the weft.yaml manifest.
package config

import (
	"fmt"
	"os"
	"slices"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
)

var _ ports.ManifestLoader = (*Loader)(nil)

var optionalName = domain.NewInternedString("Optional")

var contributionNames = map[string]domain.ContributionType{
	"":          domain.ContributionUnique,
	"unique":    domain.ContributionUnique,
	"set":       domain.ContributionSet,
	"setValues": domain.ContributionSetValues,
	"map":       domain.ContributionMap,
}

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	log ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads a manifest file from the given path and returns the parsed
// domain model. Component and module ordering is deterministic regardless of
// YAML map iteration.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	var file Weftfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	manifest := &domain.Manifest{
		Generated: internStrings(file.Generated),
	}
	parser := newTypeParser(file.Generated)

	for _, name := range sortedKeys(file.Modules) {
		module, err := l.buildModule(parser, manifest, name, file.Modules[name])
		if err != nil {
			return nil, err
		}
		manifest.Modules = append(manifest.Modules, module)
	}
	for _, name := range sortedKeys(file.Components) {
		component, err := l.buildComponent(parser, manifest, name, file.Components[name])
		if err != nil {
			return nil, err
		}
		manifest.Components = append(manifest.Components, component)
	}

	l.log.Info(fmt.Sprintf("loaded manifest: %d components, %d modules, %d generated types",
		len(manifest.Components), len(manifest.Modules), len(manifest.Generated)))
	return manifest, nil
}

func (l *Loader) buildComponent(
	parser *typeParser,
	manifest *domain.Manifest,
	name string,
	dto ComponentDTO,
) (domain.Component, error) {
	component := domain.Component{
		Name:    domain.NewInternedString(name),
		Modules: internStrings(dto.Modules),
	}

	for _, moduleName := range component.Modules {
		if _, ok := manifest.Module(moduleName); !ok {
			return domain.Component{}, zerr.With(zerr.With(domain.ErrUnknownModule,
				"component", name),
				"module", moduleName.String())
		}
	}

	var err error
	if component.Provisions, err = l.buildMethods(parser, manifest, component.Name, dto.Provisions); err != nil {
		return domain.Component{}, err
	}
	if component.Productions, err = l.buildMethods(parser, manifest, component.Name, dto.Productions); err != nil {
		return domain.Component{}, err
	}
	if component.MembersInjections, err = l.buildMethods(parser, manifest, component.Name, dto.MembersInjections); err != nil {
		return domain.Component{}, err
	}
	return component, nil
}

func (l *Loader) buildMethods(
	parser *typeParser,
	manifest *domain.Manifest,
	owner domain.InternedString,
	dtos []MethodDTO,
) ([]domain.Method, error) {
	methods := make([]domain.Method, 0, len(dtos))
	for _, dto := range dtos {
		method := domain.Method{Name: domain.NewInternedString(dto.Name)}
		site := domain.MethodSite(owner, method.Name)

		if dto.Returns != "" {
			ret, err := parser.Parse(dto.Returns)
			if err != nil {
				return nil, zerr.With(err, "site", site.String())
			}
			method.Ret = &ret
		}
		for _, p := range dto.Params {
			paramType, err := parser.Parse(p.Type)
			if err != nil {
				return nil, zerr.With(err, "site", site.String())
			}
			method.Params = append(method.Params, domain.Param{
				Name: domain.NewInternedString(p.Name),
				Type: paramType,
			})
		}

		if dto.Qualifier != "" {
			manifest.Annotations.SetQualifier(site, domain.NewInternedString(dto.Qualifier))
		}
		if dto.Nullable {
			manifest.Annotations.SetNullable(site)
		}
		methods = append(methods, method)
	}
	return methods, nil
}

func (l *Loader) buildModule(
	parser *typeParser,
	manifest *domain.Manifest,
	name string,
	dto ModuleDTO,
) (domain.Module, error) {
	module := domain.Module{Name: domain.NewInternedString(name)}

	for _, bindingDTO := range dto.Bindings {
		binding, err := l.buildBinding(parser, manifest, module.Name, bindingDTO)
		if err != nil {
			return domain.Module{}, err
		}
		module.Bindings = append(module.Bindings, binding)
	}
	return module, nil
}

func (l *Loader) buildBinding(
	parser *typeParser,
	manifest *domain.Manifest,
	moduleName domain.InternedString,
	dto BindingDTO,
) (domain.ModuleBinding, error) {
	bindingName := domain.NewInternedString(dto.Name)
	site := domain.MethodSite(moduleName, bindingName)

	contribution, ok := contributionNames[dto.Contribution]
	if !ok {
		return domain.ModuleBinding{}, zerr.With(zerr.With(domain.ErrManifestParseFailed,
			"site", site.String()),
			"contribution", dto.Contribution)
	}

	provides, err := parser.Parse(dto.Provides)
	if err != nil {
		return domain.ModuleBinding{}, zerr.With(err, "site", site.String())
	}
	if dto.Optional && !isOptionalType(provides) {
		return domain.ModuleBinding{}, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrManifestParseFailed, "optional binding must provide an Optional type"),
			"site", site.String()),
			"provides", dto.Provides)
	}

	binding := domain.ModuleBinding{
		Name:         bindingName,
		Provides:     provides,
		Qualifier:    internQualifier(dto.Qualifier),
		Production:   dto.Production,
		Optional:     dto.Optional,
		Contribution: contribution,
	}
	for _, p := range dto.Params {
		paramType, err := parser.Parse(p.Type)
		if err != nil {
			return domain.ModuleBinding{}, zerr.With(err, "site", site.String())
		}
		paramName := domain.NewInternedString(p.Name)
		binding.Params = append(binding.Params, domain.Param{Name: paramName, Type: paramType})

		paramSite := domain.ParamSite(moduleName, bindingName, paramName)
		if p.Qualifier != "" {
			manifest.Annotations.SetQualifier(paramSite, domain.NewInternedString(p.Qualifier))
		}
		if p.Nullable {
			manifest.Annotations.SetNullable(paramSite)
		}
	}
	return binding, nil
}

// isOptionalType reports whether a descriptor is Optional with exactly one
// type argument.
func isOptionalType(t domain.Type) bool {
	_, ok := t.SoleArg()
	return ok && t.IsDeclared(optionalName)
}

// internQualifier interns a qualifier, leaving the absent qualifier as the
// zero value so unqualified keys stay comparable.
func internQualifier(q string) domain.InternedString {
	if q == "" {
		return domain.InternedString{}
	}
	return domain.NewInternedString(q)
}

func internStrings(strs []string) []domain.InternedString {
	if len(strs) == 0 {
		return nil
	}
	res := make([]domain.InternedString, len(strs))
	for i, s := range strs {
		res[i] = domain.NewInternedString(s)
	}
	return res
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
