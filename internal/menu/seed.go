package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cafedelight/menu-backend/internal/domain"
	"github.com/cafedelight/menu-backend/internal/logger"
)

type seedItem struct {
	Category    string
	Name        string
	Price       float64
	Description string
}

// Seed bulk-loads the fixed catalog on first run. It fires only when the
// collection is empty; once any item exists it never runs again.
func (s *Service) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count menu items: %w", err)
	}
	if count > 0 {
		return nil
	}

	logger.Info("preloading menu items")

	now := time.Now().UTC()
	items := make([]domain.MenuItem, 0, len(seedCatalog))
	for _, seed := range seedCatalog {
		items = append(items, domain.MenuItem{
			ID:          uuid.NewString(),
			Category:    seed.Category,
			Name:        seed.Name,
			Price:       seed.Price,
			Description: seed.Description,
			IsSpecial:   false,
			Available:   true,
			ImageURL:    "",
			CreatedAt:   now,
		})
	}

	if err := s.repo.BulkInsert(ctx, items); err != nil {
		return fmt.Errorf("failed to preload menu items: %w", err)
	}

	logger.Info("preloaded menu items", "count", len(items))
	return nil
}

var seedCatalog = []seedItem{
	// Lassi
	{"Lassi", "Sweet Lassi", 40, "Refreshing sweet lassi made from curd and sugar"},
	{"Lassi", "Banana Lassi", 55, "Creamy banana lassi"},
	{"Lassi", "Mango Lassi", 60, "Refreshing mango lassi"},
	{"Lassi", "Fruit Lassi", 60, "Mixed fruit lassi"},
	{"Lassi", "Strawberry Lassi", 60, "Fresh strawberry lassi"},
	{"Lassi", "Pista Lassi", 70, "Rich pistachio lassi"},
	{"Lassi", "Chocolate Lassi", 70, "Chocolate flavored lassi"},
	{"Lassi", "Dryfruit Lassi", 80, "Lassi with mixed dry fruits"},
	{"Lassi", "Fruit & Nut Lassi", 80, "Premium fruit and nut lassi"},
	{"Lassi", "Royal Lassi", 80, "Special royal lassi with saffron"},

	// Falooda
	{"Falooda", "Classic Falooda", 80, "Traditional falooda with rose syrup"},
	{"Falooda", "Pista Falooda", 99, "Pistachio flavored falooda"},
	{"Falooda", "Fruity Falooda", 99, "Falooda with fresh fruits"},
	{"Falooda", "Royal Kashmiri Falooda", 120, "Premium Kashmiri style falooda"},

	// Milk Shakes
	{"Milk Shakes", "Banana Bonkers", 60, "Thick banana milkshake"},
	{"Milk Shakes", "Pista Shake", 60, "Pistachio milkshake"},
	{"Milk Shakes", "Vanilla Shake", 60, "Classic vanilla milkshake"},
	{"Milk Shakes", "Belgian Chocolate", 70, "Rich Belgian chocolate shake"},
	{"Milk Shakes", "Very Berry Strawberry", 70, "Strawberry milkshake"},
	{"Milk Shakes", "Oreo", 85, "Oreo cookie milkshake"},
	{"Milk Shakes", "Chocochip Cookies", 85, "Chocolate chip cookie shake"},
	{"Milk Shakes", "Kala Jamoon", 85, "Kala jamun flavored shake"},
	{"Milk Shakes", "Mango Alphonso", 85, "Alphonso mango shake"},
	{"Milk Shakes", "Blueberry", 85, "Fresh blueberry shake"},
	{"Milk Shakes", "Kesar Pista", 85, "Saffron and pistachio shake"},
	{"Milk Shakes", "Lychee & Lychee", 110, "Double lychee shake"},
	{"Milk Shakes", "Mango Lychee", 120, "Mango and lychee fusion"},
	{"Milk Shakes", "Cherry Bubble Shake", 120, "Cherry shake with popping boba"},
	{"Milk Shakes", "Mango Bubble Shake", 120, "Mango shake with popping boba"},
	{"Milk Shakes", "Berry Bubble Shake", 120, "Mixed berry shake with popping boba"},

	// Dry Fruit Shakes
	{"Dry Fruit Shakes", "Dry Fruit Shake", 99, "Mixed dry fruit shake"},
	{"Dry Fruit Shakes", "Arabian Night Shake", 109, "Arabian style dry fruit shake"},
	{"Dry Fruit Shakes", "Anjeer Shake", 110, "Fig dry fruit shake"},
	{"Dry Fruit Shakes", "Kaju Anjeer Shake", 120, "Cashew and fig shake"},

	// Muds & Hotties
	{"Muds & Hotties", "Mississippi Mud", 120, "Rich chocolate mud"},
	{"Muds & Hotties", "Oreo Mud", 130, "Oreo chocolate mud"},
	{"Muds & Hotties", "KitKat Mud", 130, "KitKat chocolate mud"},
	{"Muds & Hotties", "Choco Blast", 70, "Hot chocolate blast"},
	{"Muds & Hotties", "Cafe Coffee", 80, "Hot café coffee"},
	{"Muds & Hotties", "Minty Coffee", 80, "Coffee with mint"},
	{"Muds & Hotties", "Marshmallow Hot Chocolate", 90, "Hot chocolate with marshmallows"},

	// Fries & Crazy Bites
	{"Fries & Crazy Bites", "Just Masala Fries", 79, "Masala seasoned fries"},
	{"Fries & Crazy Bites", "Chilli Cheese Fries", 89, "Fries with chili and cheese"},
	{"Fries & Crazy Bites", "Schezwan Fries", 89, "Spicy schezwan fries"},
	{"Fries & Crazy Bites", "Peri Peri Fries", 99, "Peri peri flavored fries"},
	{"Fries & Crazy Bites", "Smilies", 99, "Crispy potato smilies"},
	{"Fries & Crazy Bites", "Crazy Cheesy Nuggets", 99, "Cheese filled nuggets"},
	{"Fries & Crazy Bites", "Cheese Pizza Fingers", 99, "Cheesy pizza fingers"},
	{"Fries & Crazy Bites", "Loaded Nachos", 120, "Nachos with loaded toppings"},
	{"Fries & Crazy Bites", "Wild Wedges", 120, "Spicy potato wedges"},

	// Momos
	{"Momos", "Mix Veg Momos", 89, "Steamed vegetable momos"},
	{"Momos", "Schezwan Momos", 89, "Spicy schezwan momos"},
	{"Momos", "Paneer Momos", 99, "Paneer filled momos"},
	{"Momos", "Mushroom Momos", 99, "Mushroom filled momos"},
	{"Momos", "Corn N Cheese Momos", 100, "Corn and cheese momos"},
	{"Momos", "Paneer Tikka Momos", 109, "Paneer tikka flavored momos"},

	// Burger Pav
	{"Burger Pav", "Classic Vadapav", 29, "Traditional Mumbai vadapav"},
	{"Burger Pav", "Tandoori Burgerpav", 45, "Tandoori flavored burger"},
	{"Burger Pav", "Crispy N Crunchy BP", 50, "Crispy burger pav"},
	{"Burger Pav", "Horny Corny Burgerpav", 50, "Corn filled burger"},
	{"Burger Pav", "Maharaja Burgerpav", 55, "Special maharaja burger"},
	{"Burger Pav", "Cheesemaar Burgerpav", 55, "Extra cheese burger"},

	// Cold Coffee
	{"Cold Coffee", "Cold Coffee", 60, "Classic cold coffee"},
	{"Cold Coffee", "Chocolate Coffee", 80, "Chocolate flavored cold coffee"},
	{"Cold Coffee", "Oreo & Coffee", 80, "Oreo cold coffee"},
	{"Cold Coffee", "Coffee On Rocks", 80, "Iced coffee on rocks"},
	{"Cold Coffee", "Baby Bubble Coffee", 110, "Coffee with popping boba"},
	{"Cold Coffee", "Mud Coffee", 120, "Coffee mud shake"},

	// Cappuccino
	{"Cappuccino", "Classic Cappuccino", 80, "Traditional cappuccino"},
	{"Cappuccino", "Caramel Cappuccino", 90, "Caramel flavored cappuccino"},
	{"Cappuccino", "Mocha Cappuccino", 95, "Chocolate mocha cappuccino"},

	// On Nutella
	{"On Nutella", "Nutella Shake", 120, "Creamy Nutella shake"},
	{"On Nutella", "Nutella Brownie Icecream", 135, "Nutella with brownie and ice cream"},
	{"On Nutella", "Nutella Fudge Icecream", 135, "Nutella fudge with ice cream"},

	// On Mojito
	{"On Mojito", "Blue Blast", 79, "Blue mojito blast"},
	{"On Mojito", "Bubble Gum", 89, "Bubble gum mojito"},
	{"On Mojito", "Boba Melon", 89, "Melon mojito with boba"},
	{"On Mojito", "Mango Bubble", 89, "Mango mojito with boba"},
	{"On Mojito", "Berry Pop Bubble", 99, "Berry mojito with popping boba"},

	// Ice Creams
	{"Ice Creams", "Fruit Salad Icecream", 90, "Mixed fruit ice cream"},
	{"Ice Creams", "Fruit Salad Jelly", 99, "Fruit salad with jelly"},
	{"Ice Creams", "Mexican Brownie", 80, "Mexican brownie with ice cream"},
	{"Ice Creams", "Chocolate Fudge", 80, "Rich chocolate fudge"},
	{"Ice Creams", "Strawberry Fudge", 80, "Strawberry fudge ice cream"},
	{"Ice Creams", "Mocha Fudge", 85, "Coffee mocha fudge"},
	{"Ice Creams", "Mocha Mexican Brownie", 95, "Mocha brownie ice cream"},
	{"Ice Creams", "Black Currant Fudge", 90, "Black currant fudge"},
	{"Ice Creams", "Butterscotch Fudge", 99, "Butterscotch fudge ice cream"},
	{"Ice Creams", "Berry-O-La Fudge", 99, "Mixed berry fudge"},
	{"Ice Creams", "Gud Bud", 120, "Special gud bud ice cream"},
	{"Ice Creams", "Death By Chocolate", 130, "Ultimate chocolate overload"},
	{"Ice Creams", "Dry Fruit Sundae", 135, "Sundae with dry fruits"},
	{"Ice Creams", "Lychee With Icecream", 135, "Lychee ice cream special"},
	{"Ice Creams", "Roasted Almond", 135, "Roasted almond ice cream"},
	{"Ice Creams", "Choco Almond", 135, "Chocolate almond ice cream"},
	{"Ice Creams", "Sizzling Brownie", 139, "Hot sizzling brownie"},
	{"Ice Creams", "Kerala Puttu Ice Cream", 139, "Traditional Kerala puttu ice cream"},

	// Fresh Juices
	{"Fresh Juices", "Fresh Lime", 40, "Fresh lime juice"},
	{"Fresh Juices", "Masala Lime", 45, "Spicy masala lime"},
	{"Fresh Juices", "Mint Lime", 45, "Refreshing mint lime"},
	{"Fresh Juices", "Watermelon", 60, "Fresh watermelon juice"},
	{"Fresh Juices", "Muskmelon", 60, "Fresh muskmelon juice"},
	{"Fresh Juices", "Pineapple", 70, "Fresh pineapple juice"},
	{"Fresh Juices", "Papaya", 70, "Fresh papaya juice"},
	{"Fresh Juices", "Apple", 80, "Fresh apple juice"},
	{"Fresh Juices", "Orange", 80, "Fresh orange juice"},
	{"Fresh Juices", "Mango", 80, "Fresh mango juice"},
	{"Fresh Juices", "ABC", 90, "Apple, Beetroot, Carrot juice"},
	{"Fresh Juices", "CAP", 90, "Carrot, Apple, Pineapple juice"},

	// Add Ons
	{"Add Ons", "Extra Chocochips", 15, "Add chocolate chips"},
	{"Add Ons", "Extra Chocolate", 15, "Extra chocolate topping"},
	{"Add Ons", "Extra Nuts", 25, "Extra dry fruits and nuts"},
	{"Add Ons", "Extra Cheese", 25, "Extra cheese topping"},
	{"Add Ons", "Extra Sauce", 20, "Extra sauce of your choice"},
}
