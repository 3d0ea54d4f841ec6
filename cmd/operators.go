/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/condensate/gotdgl/FV2D"
	"github.com/condensate/gotdgl/FV2D/mesh"
	"github.com/condensate/gotdgl/InputParameters"
	"github.com/condensate/gotdgl/readfiles"
)

type ModelFV struct {
	MeshFile   string
	ParamsFile string
	Profile    bool
}

// operatorsCmd represents the operators command
var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "Assemble the finite volume operators for a mesh and report on them",
	Long: `
Reads a triangulation and a TDGL parameter file, builds the finite volume
mesh with its Voronoi dual, then assembles the requested sparse operators and
prints their dimensions, storage and conservation properties.

gotdgl operators -F mesh.yaml -I params.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mfv := &ModelFV{}
		if mfv.MeshFile, err = cmd.Flags().GetString("meshFile"); err != nil {
			panic(err)
		}
		if mfv.ParamsFile, err = cmd.Flags().GetString("paramsFile"); err != nil {
			panic(err)
		}
		mfv.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processInput(mfv)
		RunOperators(mfv, ip)
	},
}

func processInput(mfv *ModelFV) (ip *InputParameters.TDGLParameters) {
	var (
		willExit bool
	)
	if len(mfv.MeshFile) == 0 {
		fmt.Printf("error: must supply a mesh file (-F, --meshFile) in YAML triangulation format\n")
		willExit = true
	}
	ip = &InputParameters.TDGLParameters{}
	if len(mfv.ParamsFile) == 0 {
		exampleFile := `
########################################
Title: "Vortex Entry"
Kappa: 4.
AppliedField: 0.8
FixedSites: [0, 1, 2]
FixedSitesEigenvalue: 1.
Operators: [Laplacian, Gradient, Divergence, NeumannBoundaryLaplacian]
########################################
`
		fmt.Printf("no parameters file (-I, --paramsFile) supplied, using defaults; example:\n%s", exampleFile)
		ip.Title = "Default"
		ip.FixedSitesEigenvalue = 1
		ip.Operators = []string{"Laplacian", "Gradient", "Divergence", "NeumannBoundaryLaplacian"}
	} else {
		data, err := os.ReadFile(mfv.ParamsFile)
		if err != nil {
			fmt.Printf("error: unable to read parameters file: %s\n", err.Error())
			willExit = true
		} else if err = ip.Parse(data); err != nil {
			fmt.Printf("error: unable to parse parameters file: %s\n", err.Error())
			willExit = true
		}
	}
	if willExit {
		os.Exit(1)
	}
	ip.Print()
	return
}

func RunOperators(mfv *ModelFV, ip *InputParameters.TDGLParameters) {
	if mfv.Profile {
		defer profile.Start().Stop()
	}
	tm, err := readfiles.ReadTriMesh(mfv.MeshFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	msh, err := mesh.FromTriMesh(tm)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Mesh: %d sites, %d edges (%d boundary), total area %8.5f\n",
		msh.NumSites(), msh.NumEdges(), msh.EdgeMesh.NumBoundaryEdges(), totalArea(msh))

	builder := FV2D.NewMatrixBuilder(msh)
	if len(ip.FixedSites) != 0 {
		builder.WithDirichletBoundary(ip.FixedSites, ip.FixedSitesEigenvalue)
	}
	if ip.AppliedField != 0 {
		builder.WithLinkExponents(FV2D.LinkExponentsForUniformField(msh, ip.AppliedField))
	}
	for _, name := range ip.Operators {
		mt, err := matrixTypeFromName(name)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		op, err := builder.Build(mt)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		reportOperator(op)
	}
}

func matrixTypeFromName(name string) (mt FV2D.MatrixType, err error) {
	switch name {
	case "Laplacian":
		mt = FV2D.Laplacian
	case "NeumannBoundaryLaplacian":
		mt = FV2D.NeumannBoundaryLaplacian
	case "Divergence":
		mt = FV2D.Divergence
	case "Gradient":
		mt = FV2D.Gradient
	default:
		err = fmt.Errorf("unknown operator name: %q", name)
	}
	return
}

func reportOperator(op *FV2D.Operator) {
	var (
		nr, nc = op.Dims()
		field  = "real"
	)
	if op.IsComplex() {
		field = "complex"
	}
	fmt.Printf("%-26s %5d x %-5d %7d stored, %s", op.Kind, nr, nc, op.NNZ(), field)
	if op.Kind == FV2D.Laplacian && !op.IsComplex() {
		sums := op.Real.RowSums()
		var worst float64
		for _, s := range sums {
			if s > worst {
				worst = s
			}
			if -s > worst {
				worst = -s
			}
		}
		fmt.Printf(", max row sum %8.2e", worst)
	}
	fmt.Println()
}

func totalArea(msh *mesh.Mesh) (total float64) {
	for _, a := range msh.Areas {
		total += a
	}
	return
}

func init() {
	rootCmd.AddCommand(operatorsCmd)
	operatorsCmd.Flags().StringP("meshFile", "F", "", "YAML triangulation file (Sites, Elements)")
	operatorsCmd.Flags().StringP("paramsFile", "I", "", "YAML TDGL parameters file")
	operatorsCmd.Flags().Bool("profile", false, "write a CPU profile of the assembly")
}
