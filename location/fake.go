package location

import "context"

// FakeGeocoder returns canned coordinates in tests.
type FakeGeocoder struct {
	Point     Point
	Err       error
	LastPlace string
}

var _ Geocoder = (*FakeGeocoder)(nil)

func (f *FakeGeocoder) Geocode(ctx context.Context, place string) (Point, error) {
	f.LastPlace = place
	if f.Err != nil {
		return Point{}, f.Err
	}
	return f.Point, nil
}
