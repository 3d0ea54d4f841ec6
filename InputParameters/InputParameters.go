package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type TDGLParameters struct {
	Title                string   `yaml:"Title"`
	Kappa                float64  `yaml:"Kappa"`        // Ginzburg-Landau parameter
	AppliedField         float64  `yaml:"AppliedField"` // uniform out-of-plane field
	FixedSites           []int    `yaml:"FixedSites"`   // Dirichlet site indices
	FixedSitesEigenvalue float64  `yaml:"FixedSitesEigenvalue"`
	Operators            []string `yaml:"Operators"` // which matrices to assemble
}

func (ip *TDGLParameters) Parse(data []byte) error {
	ip.FixedSitesEigenvalue = 1
	return yaml.Unmarshal(data, ip)
}

func (ip *TDGLParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Kappa\n", ip.Kappa)
	fmt.Printf("%8.5f\t\t= AppliedField\n", ip.AppliedField)
	fmt.Printf("%8.5f\t\t= FixedSitesEigenvalue\n", ip.FixedSitesEigenvalue)
	fixed := make([]int, len(ip.FixedSites))
	copy(fixed, ip.FixedSites)
	sort.Ints(fixed)
	fmt.Printf("%v\t\t\t= FixedSites\n", fixed)
	fmt.Printf("%v\t= Operators\n", ip.Operators)
}
