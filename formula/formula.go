package formula

import "fmt"

// Formula templates shared by every node.
const (
	weightedSumTemplate = "SUM(ARRAYFORMULA(%s * %s))"
	biasTemplate        = "(%s + %s)"
	formulaPrefix       = "="
)

// WeightedSum renders the element-wise product of two equal-length ranges,
// summed: the node's pre-activation before bias.
//
//	WeightedSum("$A$1:$A$2", "$A$3:$B$3") == "SUM(ARRAYFORMULA($A$1:$A$2 * $A$3:$B$3))"
func WeightedSum(inputRange, weightRange string) string {
	return fmt.Sprintf(weightedSumTemplate, inputRange, weightRange)
}

// AddBias wraps expr as (expr + biasCell).
func AddBias(expr, biasCell string) string {
	return fmt.Sprintf(biasTemplate, expr, biasCell)
}

// ApplyActivation substitutes expr into the template registered under name.
// Returns ErrUnknownActivation if name is not in the catalog.
func ApplyActivation(expr, name string) (string, error) {
	a, err := ParseActivation(name)
	if err != nil {
		return "", err
	}

	return a.Apply(expr)
}

// Formula marks an expression as a cell formula by prefixing "=".
func Formula(expr string) string {
	return formulaPrefix + expr
}

// Node renders the complete formula of one node: the weighted sum, the bias
// term when biasCell is non-empty, then the activation.
func Node(act Activation, inputRange, weightRange, biasCell string) (string, error) {
	expr := WeightedSum(inputRange, weightRange)
	if biasCell != "" {
		expr = AddBias(expr, biasCell)
	}
	out, err := act.Apply(expr)
	if err != nil {
		return "", err
	}

	return Formula(out), nil
}
