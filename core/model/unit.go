package model

// NumUnits is the number of power-consuming units on the site.
const NumUnits = 4

// Unit represents a named load/source point. Values are in watts.
type Unit struct {
	Name   string
	Supply float64
	Demand float64
	Net    float64 // supply minus demand, refreshed by a status pass
}

// ComputeNet refreshes Net from the current supply and demand.
func (u *Unit) ComputeNet() float64 {
	u.Net = u.Supply - u.Demand
	return u.Net
}

// Units is the fixed set of units. Identity is the array position.
type Units [NumUnits]Unit

// DefaultUnits returns the site in its initial balanced state.
func DefaultUnits() Units {
	return Units{
		{Name: "Machining", Supply: 150, Demand: 150},
		{Name: "Compressed Air", Supply: 120, Demand: 120},
		{Name: "Welding", Supply: 100, Demand: 100},
		{Name: "Testing", Supply: 160, Demand: 160},
	}
}

// SetSupplies overwrites the supply of every unit in array order.
func (u *Units) SetSupplies(supplies [NumUnits]float64) {
	for i := range u {
		u[i].Supply = supplies[i]
	}
}

// Inject matches every unit's supply to its demand.
func (u *Units) Inject() {
	for i := range u {
		u[i].Supply = u[i].Demand
	}
}

// Names returns the unit labels in array order.
func (u Units) Names() []string {
	names := make([]string, 0, NumUnits)
	for _, unit := range u {
		names = append(names, unit.Name)
	}
	return names
}
