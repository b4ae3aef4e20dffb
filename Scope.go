package go_ballisticsolver

import (
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/vector"
)

//Scope describes the sight mounted on the weapon
type Scope struct {
	height unit.Distance
	offset unit.Distance
	cant   unit.Angular
}

//CreateDefaultScope creates the scope mounted 1.5 inches over the bore with no offset and no cant
func CreateDefaultScope() Scope {
	return Scope{
		height: unit.MustCreateDistance(1.5, unit.DistanceInch),
		offset: unit.MustCreateDistance(0, unit.DistanceInch),
		cant:   unit.MustCreateAngular(0, unit.AngularDegree),
	}
}

//CreateScope creates the scope description
//
//height - is the distance between the scope centerline and the bore centerline
//
//offset - is the horizontal distance between the scope centerline and the bore centerline,
//the positive value means that the scope is to the right of the bore
//
//cant - is the rotation of the weapon around the line of sight, the positive value
//means that the weapon is rolled clockwise from the shooter's view
func CreateScope(height, offset unit.Distance, cant unit.Angular) (Scope, error) {
	if err := checkRange("Scope height (m)", height.In(unit.DistanceMeter), -1, 1); err != nil {
		return Scope{}, err
	}
	if err := checkRange("Scope offset (m)", offset.In(unit.DistanceMeter), -1, 1); err != nil {
		return Scope{}, err
	}
	if err := checkRange("Scope cant (deg)", cant.In(unit.AngularDegree), -90, 90); err != nil {
		return Scope{}, err
	}
	return Scope{height: height, offset: offset, cant: cant}, nil
}

//Height returns the height of the scope over the bore
func (v Scope) Height() unit.Distance {
	return v.height
}

//Offset returns the horizontal offset of the scope
func (v Scope) Offset() unit.Distance {
	return v.offset
}

//Cant returns the cant angle
func (v Scope) Cant() unit.Angular {
	return v.cant
}

//position returns the position of the scope relative to the muzzle in the sight frame
func (v Scope) position() vector.Vector {
	return vector.Create(0, v.height.In(unit.DistanceMeter), v.offset.In(unit.DistanceMeter))
}
