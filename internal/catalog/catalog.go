// Package catalog holds the static frame reference data. Orders copy the
// name and price out of here at submission time, so edits to this list never
// rewrite history.
package catalog

// Frame describes one purchasable frame style.
type Frame struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

var frames = []Frame{
	{ID: 1, Name: "Modern Black Frame", Price: 250, ImageURL: "/img/images1.png"},
	{ID: 2, Name: "Classic Gold Leaf", Price: 350, ImageURL: "/img/images2.png"},
	{ID: 3, Name: "Ornate Vintage Gold", Price: 550, ImageURL: "/img/images3.png"},
	{ID: 4, Name: "Minimalist Matte Black", Price: 200, ImageURL: "/img/images4.png"},
	{ID: 5, Name: "Natural Barnwood", Price: 400, ImageURL: "/img/images5.png"},
	{ID: 6, Name: "Polished Silver Metal", Price: 450, ImageURL: "/img/images6.png"},
	{ID: 7, Name: "Rich Walnut Finish", Price: 380, ImageURL: "/img/images7.png"},
	{ID: 8, Name: "Deep Shadow Box", Price: 600, ImageURL: "/img/images8.png"},
	{ID: 9, Name: "Elegant Ornate Silver", Price: 580, ImageURL: "/img/images9.png"},
	{ID: 10, Name: "Modern Gallery White", Price: 320, ImageURL: "/img/images10.png"},
	{ID: 11, Name: "Rustic Reclaimed Wood", Price: 350, ImageURL: "/img/images11.png"},
	{ID: 12, Name: "Sleek Polished Chrome", Price: 550, ImageURL: "/img/images12.png"},
}

// All returns every frame style in display order.
func All() []Frame {
	out := make([]Frame, len(frames))
	copy(out, frames)
	return out
}

// Lookup returns the frame with the given id, if any.
func Lookup(id int) (Frame, bool) {
	for _, f := range frames {
		if f.ID == id {
			return f, true
		}
	}
	return Frame{}, false
}
