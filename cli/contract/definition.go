package contract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xrpl-wasm/xrpl-go/pkg/core/transaction"
	"github.com/xrpl-wasm/xrpl-go/pkg/smartcontract"
)

// parameterDef describes one parameter of a contract definition file. For
// instance parameters the value is set alongside the declaration.
type parameterDef struct {
	Name       string                  `yaml:"name,omitempty"`
	Type       smartcontract.ParamType `yaml:"type"`
	SendAmount bool                    `yaml:"sendamount,omitempty"`
	Value      string                  `yaml:"value,omitempty"`
}

// functionDef describes one function of a contract definition file.
type functionDef struct {
	Name       string         `yaml:"name"`
	Parameters []parameterDef `yaml:"parameters,omitempty"`
}

// Definition is a YAML-friendly description of a contract to deploy: its
// function signatures and instance configuration.
type Definition struct {
	Immutable bool           `yaml:"immutable,omitempty"`
	Functions []functionDef  `yaml:"functions"`
	Instance  []parameterDef `yaml:"instance,omitempty"`
}

func (p parameterDef) flags() smartcontract.ParamFlag {
	if p.SendAmount {
		return smartcontract.SendAmount
	}
	return smartcontract.NoFlags
}

// ParseDefinition reads a contract definition from a YAML file.
func ParseDefinition(path string) (*Definition, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	d := new(Definition)
	if err := yaml.Unmarshal(b, d); err != nil {
		return nil, fmt.Errorf("failed to parse definition file: %w", err)
	}
	return d, nil
}

// ToContractCreate assembles a deployment transaction body from the
// definition and the given code reference.
func (d *Definition) ToContractCreate(code transaction.CodeRef) (*transaction.ContractCreate, error) {
	fns := make([]smartcontract.Function, 0, len(d.Functions))
	for _, f := range d.Functions {
		fn := smartcontract.Function{Name: smartcontract.NewName(f.Name)}
		for _, p := range f.Parameters {
			fn.Parameters = append(fn.Parameters, smartcontract.FunctionParameter{
				Type:  p.Type,
				Flags: p.flags(),
				Name:  smartcontract.NewName(p.Name),
			})
		}
		fns = append(fns, fn)
	}
	var (
		params []smartcontract.InstanceParameter
		values []smartcontract.InstanceParameterValue
	)
	for i, p := range d.Instance {
		val, err := smartcontract.NewValueFromString(p.Type, p.Value)
		if err != nil {
			return nil, fmt.Errorf("instance parameter #%d/%q: %w", i, p.Name, err)
		}
		params = append(params, smartcontract.InstanceParameter{
			Flags: p.flags(),
			Type:  p.Type,
			Name:  smartcontract.NewName(p.Name),
		})
		values = append(values, smartcontract.InstanceParameterValue{
			Flags: p.flags(),
			Type:  p.Type,
			Value: val,
		})
	}
	var flags uint32
	if d.Immutable {
		flags |= transaction.Immutable
	}
	return transaction.NewContractCreate(code, flags, fns, params, values)
}
