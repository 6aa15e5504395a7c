// annotations.go defines the @bliss: annotations understood by the WGSL pre-processor.
// An annotation is a single-line WGSL comment such as
//
//	//@bliss:include proj_view
//	//@bliss:group 0 0 storage_uniform proj_view proj_view
//	//@bliss:provider 1 0 material albedo
//
// include injects a registered struct, group emits a @group/@binding declaration for a
// registered struct, and provider marks a hand-written binding as owned by a material map.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const annotationPrefix = "@bliss:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
type AnnotationType string

const (
	// annotationTypeInclude injects the WGSL source of a registered struct at the annotation site.
	//
	// Syntax: //@bliss:include <struct_type>
	annotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup generates a @group/@binding variable declaration for a registered
	// struct and records the annotation in the declarations list.
	//
	// Syntax: //@bliss:group <group> <binding> <address_space> <var_name> <struct_type>
	AnnotationTypeBindingGroup AnnotationType = "group"

	// AnnotationTypeProvider records which owner fills a hand-written binding without emitting WGSL.
	// Material texture bindings carry the material map type as a fourth argument.
	//
	// Syntax: //@bliss:provider <group> <binding> <provider_identity> [<map_type>]
	AnnotationTypeProvider AnnotationType = "provider"
)

// Annotation is one parsed @bliss: annotation.
type Annotation struct {
	// Type identifies which annotation was parsed.
	Type AnnotationType

	// Args holds the arguments. The contents depend on Type:
	//   - include:  [0] = struct type key
	//   - group:    [0] = address space, [1] = var name, [2] = struct type key
	//   - provider: [0] = provider identity, [1] = material map type (optional)
	Args []AnnotationArg

	// Line is the 1-based source line, used for error reporting.
	Line int

	// Group and Binding are nil for include annotations.
	Group   *int
	Binding *int
}

// AnnotationArg is a typed annotation argument.
type AnnotationArg string

// Struct type arguments.
const (
	// AnnotationArgProjView identifies the ProjView uniform (GPUProjViewSource).
	AnnotationArgProjView AnnotationArg = "proj_view"

	// AnnotationArgPrimitiveVertex identifies the PrimitiveVertex2D vertex input (GPUPrimitiveVertexSource).
	AnnotationArgPrimitiveVertex AnnotationArg = "primitive_vertex"

	// AnnotationArgMaterialParams identifies the MaterialParams uniform (GPUMaterialParamsSource).
	AnnotationArgMaterialParams AnnotationArg = "material_params"
)

// Address space arguments.
const (
	annotationArgStorageTypeUniform   AnnotationArg = "storage_uniform"
	annotationArgStorageTypeRead      AnnotationArg = "storage_read"
	annotationArgStorageTypeReadWrite AnnotationArg = "storage_read_write"
)

// Provider identity arguments.
const (
	// AnnotationArgMaterial marks a texture binding filled from a material map.
	AnnotationArgMaterial AnnotationArg = "material"
)

// Material map type arguments, matching material.MaterialMapType names.
const (
	AnnotationArgAlbedo    AnnotationArg = "albedo"
	AnnotationArgMetallic  AnnotationArg = "metallic"
	AnnotationArgNormal    AnnotationArg = "normal"
	AnnotationArgRoughness AnnotationArg = "roughness"
	AnnotationArgOcclusion AnnotationArg = "occlusion"
	AnnotationArgEmission  AnnotationArg = "emission"
	AnnotationArgHeight    AnnotationArg = "height"
)

var validStructTypes = []AnnotationArg{
	AnnotationArgProjView,
	AnnotationArgPrimitiveVertex,
	AnnotationArgMaterialParams,
}

var validAddressSpaces = []AnnotationArg{
	annotationArgStorageTypeUniform,
	annotationArgStorageTypeRead,
	annotationArgStorageTypeReadWrite,
}

var validProviderIdentities = []AnnotationArg{
	AnnotationArgMaterial,
}

var validMapTypes = []AnnotationArg{
	AnnotationArgAlbedo,
	AnnotationArgMetallic,
	AnnotationArgNormal,
	AnnotationArgRoughness,
	AnnotationArgOcclusion,
	AnnotationArgEmission,
	AnnotationArgHeight,
}

// parseAnnotation parses one source line. Lines without the prefix yield (nil, nil).
//
// Parameters:
//   - line: the raw WGSL source line
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return nil, nil
	}
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @bliss annotation", lineNum)
	}

	switch AnnotationType(args[0]) {
	case annotationTypeInclude:
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @bliss include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validStructTypes, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @bliss include annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: annotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(args[1])},
			Line: lineNum,
		}, nil
	case AnnotationTypeBindingGroup:
		if len(args) != 6 {
			return nil, fmt.Errorf("line %d: @bliss group annotation requires five arguments (group, binding, address space, var name, struct type)", lineNum)
		}
		group, binding, err := parseGroupBinding(args[1], args[2], lineNum)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(validAddressSpaces, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown address space %q in @bliss group annotation", lineNum, args[3])
		}
		elem := args[5]
		if inner, ok := strings.CutPrefix(elem, "array<"); ok {
			elem = strings.TrimSuffix(inner, ">")
		}
		if !slices.Contains(validStructTypes, AnnotationArg(elem)) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @bliss group annotation", lineNum, elem)
		}
		return &Annotation{
			Type:    AnnotationTypeBindingGroup,
			Args:    []AnnotationArg{AnnotationArg(args[3]), AnnotationArg(args[4]), AnnotationArg(args[5])},
			Line:    lineNum,
			Group:   &group,
			Binding: &binding,
		}, nil
	case AnnotationTypeProvider:
		if len(args) < 4 || len(args) > 5 {
			return nil, fmt.Errorf("line %d: @bliss provider annotation requires three or four arguments (group, binding, provider identity[, map type])", lineNum)
		}
		group, binding, err := parseGroupBinding(args[1], args[2], lineNum)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(validProviderIdentities, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown provider identity %q in @bliss provider annotation", lineNum, args[3])
		}
		providerArgs := []AnnotationArg{AnnotationArg(args[3])}
		if len(args) == 5 {
			if !slices.Contains(validMapTypes, AnnotationArg(args[4])) {
				return nil, fmt.Errorf("line %d: unknown map type %q in @bliss provider annotation", lineNum, args[4])
			}
			providerArgs = append(providerArgs, AnnotationArg(args[4]))
		}
		return &Annotation{
			Type:    AnnotationTypeProvider,
			Args:    providerArgs,
			Line:    lineNum,
			Group:   &group,
			Binding: &binding,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @bliss annotation type %q", lineNum, args[0])
	}
}

func parseGroupBinding(groupArg, bindingArg string, lineNum int) (int, int, error) {
	group, err := strconv.Atoi(groupArg)
	if err != nil || group < 0 {
		return 0, 0, fmt.Errorf("line %d: invalid group number %q", lineNum, groupArg)
	}
	binding, err := strconv.Atoi(bindingArg)
	if err != nil || binding < 0 {
		return 0, 0, fmt.Errorf("line %d: invalid binding number %q", lineNum, bindingArg)
	}
	return group, binding, nil
}
