package scoring

import "fmt"

// All normalized metrics land on the fixed [1,5] scale the rating metrics
// already use.
const (
	targetMin = 1.0
	targetMax = 5.0
)

// Domain is the practical [Min,Max] range of a raw metric, the source
// interval for linear interpolation onto the target scale.
type Domain struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

func (d Domain) Validate() error {
	if d.Max <= d.Min {
		return fmt.Errorf("normalization domain [%g,%g]: max must exceed min", d.Min, d.Max)
	}
	return nil
}

// LinearScale maps a raw metric from its domain onto [1.0, 5.0]. Values
// outside the domain clamp to the target bounds instead of extrapolating
// past them, so a brand-new hire can never score below 1.0.
type LinearScale struct {
	domain Domain
}

func NewLinearScale(domain Domain) (*LinearScale, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	return &LinearScale{domain: domain}, nil
}

func (s *LinearScale) Normalize(value float64) float64 {
	raw := targetMin + (value-s.domain.Min)*(targetMax-targetMin)/(s.domain.Max-s.domain.Min)
	return clamp(raw, targetMin, targetMax)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
