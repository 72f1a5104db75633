package catalog

import "github.com/techmart/storefront/model"

// SeedProducts returns the fixed demo dataset inserted by the seed endpoint.
// IDs are assigned on insert, so repeated seeding adds fresh copies exactly
// like the original insert-many behavior.
func SeedProducts() []model.Product {
	return []model.Product{
		// Phones
		{
			Name:        "iPhone 15 Pro",
			Brand:       "Apple",
			Model:       "15 Pro",
			Price:       999.99,
			Description: "Latest iPhone model with titanium frame, premium glass design, and advanced triple camera system",
			Image:       "/images/products/iphone-15-pro.jpg",
			Category:    model.CategoryPhones,
			Status:      "active",
			Features:    []string{"Titanium frame", "A17 Pro chip", "48MP camera"},
			UseCases:    []string{"Photography", "Gaming", "Professional use"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "1 year limited"},
				Details: map[string]string{
					"screen":    "6.1 inch OLED",
					"storage":   "256GB",
					"camera":    "48MP Triple Camera",
					"processor": "A17 Pro",
					"battery":   "4000mAh",
					"os":        "iOS 17",
				},
			},
		},
		{
			Name:        "Samsung Galaxy S23 Ultra",
			Brand:       "Samsung",
			Model:       "S23 Ultra",
			Price:       1199.99,
			Description: "Premium Android flagship with S-Pen and advanced quad-camera system",
			Image:       "/images/products/galaxy-s23-ultra.jpg",
			Category:    model.CategoryPhones,
			Status:      "active",
			Features:    []string{"S-Pen included", "200MP camera", "8K video"},
			UseCases:    []string{"Note-taking", "Photography", "Gaming"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "1 year limited"},
				Details: map[string]string{
					"screen":    "6.8 inch AMOLED",
					"storage":   "512GB",
					"camera":    "200MP Quad Camera",
					"processor": "Snapdragon 8 Gen 2",
					"battery":   "5000mAh",
					"os":        "Android 13",
				},
			},
		},
		{
			Name:        "Galaxy S24 Ultra",
			Brand:       "Samsung",
			Model:       "S24 Ultra",
			Price:       1299.99,
			Description: "Premium Android smartphone with advanced AI features and 200MP camera",
			Image:       "/images/products/galaxy-s24-ultra.jpg",
			Category:    model.CategoryPhones,
			Status:      "active",
			Features:    []string{"AI-powered camera", "S Pen included", "IP68 water resistance"},
			UseCases:    []string{"Photography", "Productivity", "Gaming"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2024, Warranty: "1 year limited"},
				Details: map[string]string{
					"screen":    "6.8-inch Dynamic AMOLED 2X",
					"processor": "Snapdragon 8 Gen 3",
					"ram":       "12GB",
					"storage":   "512GB",
					"camera":    "200MP main + 12MP ultra-wide + 50MP telephoto",
					"battery":   "5000mAh",
					"os":        "Android 14",
				},
			},
		},
		{
			Name:        "Google Pixel 8 Pro",
			Brand:       "Google",
			Model:       "Pixel 8 Pro",
			Price:       999.99,
			Description: "Google's flagship phone with advanced AI features and exceptional camera capabilities",
			Image:       "/images/products/pixel-8-pro.jpg",
			Category:    model.CategoryPhones,
			Status:      "active",
			Features:    []string{"Advanced AI photo editing", "7 years of updates", "IP68 rating"},
			UseCases:    []string{"Photography", "AI features", "Long-term use"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "2 year limited"},
				Details: map[string]string{
					"screen":    "6.7-inch LTPO OLED",
					"processor": "Google Tensor G3",
					"ram":       "12GB",
					"storage":   "256GB",
					"camera":    "50MP main + 48MP ultra-wide + 48MP telephoto",
					"battery":   "5050mAh",
					"os":        "Android 14",
				},
			},
		},
		{
			Name:        "OnePlus 12",
			Brand:       "OnePlus",
			Model:       "12",
			Price:       799.99,
			Description: "Flagship killer with Snapdragon 8 Gen 3 and Hasselblad cameras",
			Image:       "/images/products/oneplus-12.jpg",
			Category:    model.CategoryPhones,
			Status:      "active",
			Features:    []string{"100W SUPERVOOC charging", "Hasselblad cameras", "Rain Touch"},
			UseCases:    []string{"Gaming", "Photography", "Fast charging"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2024, Warranty: "1 year limited"},
				Details: map[string]string{
					"screen":    "6.82-inch LTPO AMOLED",
					"processor": "Snapdragon 8 Gen 3",
					"ram":       "16GB",
					"storage":   "512GB",
					"camera":    "50MP main + 48MP ultra-wide + 64MP telephoto",
					"battery":   "5400mAh",
					"os":        "OxygenOS 14",
				},
			},
		},

		// Computers
		{
			Name:        "ROG Strix Gaming Laptop",
			Brand:       "ASUS",
			Model:       "ROG Strix",
			Price:       2499.99,
			Description: "Ultimate gaming laptop with RTX 4090 and high refresh rate display",
			Image:       "/images/products/rog-strix.jpg",
			Category:    model.CategoryComputers,
			Status:      "active",
			Features:    []string{"RTX 4090", "240Hz display", "DDR5 memory"},
			UseCases:    []string{"Gaming", "Content creation", "3D rendering"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2024, Warranty: "1 year limited"},
				Details: map[string]string{
					"processor": "Intel i9-13900HX",
					"gpu":       "NVIDIA RTX 4090 16GB",
					"ram":       "32GB DDR5",
					"storage":   "2TB NVMe SSD",
					"display":   "17.3 inch 240Hz QHD",
				},
			},
		},
		{
			Name:        "MacBook Pro 16",
			Brand:       "Apple",
			Model:       "MacBook Pro 16-inch",
			Price:       2699.99,
			Description: "Professional laptop with M3 Max chip and stunning Liquid Retina XDR display",
			Image:       "/images/products/macbook-pro-16.jpg",
			Category:    model.CategoryComputers,
			Status:      "active",
			Features:    []string{"M3 Max chip", "XDR display", "22-hour battery"},
			UseCases:    []string{"Professional work", "Content creation", "Development"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "1 year limited"},
				Details: map[string]string{
					"processor": "M3 Max",
					"ram":       "32GB Unified Memory",
					"storage":   "1TB SSD",
					"display":   "16-inch Liquid Retina XDR",
					"battery":   "22 hours",
				},
			},
		},
		{
			Name:        "Dell XPS 15 (2024)",
			Brand:       "Dell",
			Model:       "XPS 15 9530",
			Price:       2199.99,
			Description: "Premium ultrabook with 13th Gen Intel Core processors and OLED display",
			Image:       "/images/products/dell-xps-15.jpg",
			Category:    model.CategoryComputers,
			Status:      "active",
			Features:    []string{"OLED display", "RTX 4070", "CNC aluminum"},
			UseCases:    []string{"Professional work", "Content creation", "Light gaming"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2024, Warranty: "1 year limited"},
				Details: map[string]string{
					"processor": "Intel Core i9-13900H",
					"gpu":       "NVIDIA RTX 4070 8GB",
					"ram":       "32GB DDR5",
					"storage":   "1TB NVMe SSD",
					"display":   "15.6-inch 3.5K OLED Touch",
					"battery":   "86Whr",
				},
			},
		},
		{
			Name:        "Framework Laptop 16",
			Brand:       "Framework",
			Model:       "Laptop 16",
			Price:       1699.99,
			Description: "Modular, upgradeable 16-inch laptop with customizable ports and replaceable components",
			Image:       "/images/products/framework-16.jpg",
			Category:    model.CategoryComputers,
			Status:      "active",
			Features:    []string{"Modular design", "User-repairable", "Customizable ports"},
			UseCases:    []string{"Professional work", "Gaming", "Long-term ownership"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2024, Warranty: "1 year limited"},
				Details: map[string]string{
					"processor": "AMD Ryzen 7 7840HS",
					"gpu":       "RX 7700S 8GB",
					"ram":       "32GB DDR5",
					"storage":   "1TB NVMe SSD",
					"display":   "16-inch 2560x1600 165Hz",
					"battery":   "85Whr",
				},
			},
		},

		// Headsets
		{
			Name:        "HyperX Cloud Alpha Wireless",
			Brand:       "HyperX",
			Model:       "Cloud Alpha Wireless",
			Price:       199.99,
			Description: "Premium wireless gaming headset with 300-hour battery life",
			Image:       "/images/products/cloud-alpha-wireless.jpg",
			Category:    model.CategoryHeadsets,
			Status:      "active",
			Features:    []string{"300-hour battery", "DTS Headphone:X", "Dual Chamber Drivers"},
			UseCases:    []string{"Gaming", "Voice chat", "Music"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "2 year limited"},
				Details: map[string]string{
					"type":         "Over-ear",
					"connectivity": "2.4GHz Wireless",
					"battery":      "300 hours",
					"microphone":   "Detachable",
					"drivers":      "50mm Dual Chamber",
				},
			},
		},
		{
			Name:        "Sony WH-1000XM5",
			Brand:       "Sony",
			Model:       "WH-1000XM5",
			Price:       399.99,
			Description: "Premium noise-cancelling headphones with industry-leading audio quality",
			Image:       "/images/products/sony-wh-1000xm5.jpg",
			Category:    model.CategoryHeadsets,
			Status:      "active",
			Features:    []string{"Adaptive NC", "LDAC codec", "Multipoint connection"},
			UseCases:    []string{"Travel", "Work", "Music"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "1 year limited"},
				Details: map[string]string{
					"type":         "Over-ear",
					"connectivity": "Bluetooth 5.2",
					"battery":      "30 hours",
					"microphone":   "Built-in Array",
					"features":     "Adaptive noise cancellation, LDAC codec",
				},
			},
		},
		{
			Name:        "Apple AirPods Pro 2",
			Brand:       "Apple",
			Model:       "AirPods Pro 2nd Gen",
			Price:       249.99,
			Description: "Premium wireless earbuds with advanced noise cancellation and USB-C charging",
			Image:       "/images/products/airpods-pro-2.jpg",
			Category:    model.CategoryHeadsets,
			Status:      "active",
			Features:    []string{"H2 chip", "Adaptive Audio", "USB-C charging"},
			UseCases:    []string{"Commuting", "Workouts", "Calls"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "1 year limited"},
				Details: map[string]string{
					"type":         "In-ear TWS",
					"connectivity": "Bluetooth 5.3",
					"battery":      "6 hours (ANC on), 30 hours with case",
					"microphone":   "Dual beamforming",
					"features":     "Active Noise Cancellation, Adaptive Audio",
				},
			},
		},
		{
			Name:        "Bose QuietComfort Ultra",
			Brand:       "Bose",
			Model:       "QuietComfort Ultra",
			Price:       429.99,
			Description: "Premium over-ear headphones with immersive audio and advanced noise cancellation",
			Image:       "/images/products/quietcomfort-ultra.jpg",
			Category:    model.CategoryHeadsets,
			Status:      "active",
			Features:    []string{"Immersive audio", "Advanced NC", "CustomTune"},
			UseCases:    []string{"Travel", "Work", "Music"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2024, Warranty: "1 year limited"},
				Details: map[string]string{
					"type":         "Over-ear",
					"connectivity": "Bluetooth 5.3, Multipoint",
					"battery":      "24 hours",
					"microphone":   "4-mic array",
					"features":     "CustomTune audio calibration",
				},
			},
		},

		// Accessories
		{
			Name:        "Razer BlackWidow V4 Pro",
			Brand:       "Razer",
			Model:       "BlackWidow V4 Pro",
			Price:       229.99,
			Description: "Premium mechanical gaming keyboard with optical switches and customizable RGB",
			Image:       "/images/products/blackwidow-v4-pro.jpg",
			Category:    model.CategoryAccessories,
			Status:      "active",
			Features:    []string{"Optical switches", "Chroma RGB", "Media controls"},
			UseCases:    []string{"Gaming", "Typing", "Productivity"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "2 year limited"},
				Details: map[string]string{
					"type":      "Mechanical",
					"switches":  "Razer Green",
					"backlight": "Chroma RGB",
					"layout":    "Full-size",
					"features":  "USB Passthrough, Media Controls",
				},
			},
		},
		{
			Name:        "Anker PowerCore III Elite",
			Brand:       "Anker",
			Model:       "PowerCore III Elite",
			Price:       159.99,
			Description: "High-capacity power bank with 25600mAh and 87W USB-C PD",
			Image:       "/images/products/powercore-iii-elite.jpg",
			Category:    model.CategoryAccessories,
			Status:      "active",
			Features:    []string{"87W USB-C PD", "LED display", "Trickle charging"},
			UseCases:    []string{"Travel", "Multiple device charging", "Laptop charging"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "18 months"},
				Details: map[string]string{
					"capacity":     "25600mAh",
					"ports":        "2x USB-C, 2x USB-A",
					"maxOutput":    "87W",
					"fastCharging": "USB-C PD, QC 3.0",
					"features":     "LED display, Trickle charging",
				},
			},
		},
		{
			Name:        "Logitech Brio 4K",
			Brand:       "Logitech",
			Model:       "Brio 4K",
			Price:       199.99,
			Description: "Professional 4K webcam with HDR and Windows Hello support",
			Image:       "/images/products/brio-4k.jpg",
			Category:    model.CategoryAccessories,
			Status:      "active",
			Features:    []string{"4K resolution", "Windows Hello", "HDR support"},
			UseCases:    []string{"Video conferencing", "Content creation", "Streaming"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "1 year limited"},
				Details: map[string]string{
					"resolution":    "4K Ultra HD",
					"frameRate":     "90 fps at 1080p",
					"features":      "HDR, 5x digital zoom",
					"connectivity":  "USB-C",
					"compatibility": "Windows Hello, Mac, Chrome OS",
				},
			},
		},
		{
			Name:        "Samsung 45W USB-C Super Fast Charger",
			Brand:       "Samsung",
			Model:       "45W Super Fast Charger",
			Price:       49.99,
			Description: "Official Samsung 45W travel adapter with Super Fast Charging 2.0 support",
			Image:       "/images/products/samsung-45w-charger.jpg",
			Category:    model.CategoryAccessories,
			Status:      "active",
			Features:    []string{"45W output", "GaN technology", "Universal compatibility"},
			UseCases:    []string{"Fast charging", "Travel", "Multiple device charging"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2024, Warranty: "1 year limited"},
				Details: map[string]string{
					"output":        "45W maximum",
					"ports":         "1x USB-C",
					"technology":    "PPS, USB-PD 3.0",
					"compatibility": "Universal USB-C devices",
				},
			},
		},
		{
			Name:        "Apple Magic Trackpad",
			Brand:       "Apple",
			Model:       "Magic Trackpad",
			Price:       129.99,
			Description: "Multi-touch trackpad with Force Touch and USB-C charging",
			Image:       "/images/products/magic-trackpad.jpg",
			Category:    model.CategoryAccessories,
			Status:      "active",
			Features:    []string{"Force Touch", "Multi-touch gestures", "USB-C charging"},
			UseCases:    []string{"Mac navigation", "Drawing", "Gesture control"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "1 year limited"},
				Details: map[string]string{
					"connectivity":  "Bluetooth, USB-C",
					"battery":       "1 month per charge",
					"surface":       "Edge-to-edge glass",
					"compatibility": "Mac, iPad",
				},
			},
		},
		{
			Name:        "SteelSeries QcK Heavy XXL",
			Brand:       "SteelSeries",
			Model:       "QcK Heavy XXL",
			Price:       39.99,
			Description: "Professional gaming mouse pad with micro-woven cloth surface and non-slip base",
			Image:       "/images/products/qck-heavy-xxl.jpg",
			Category:    model.CategoryAccessories,
			Status:      "active",
			Features:    []string{"Micro-woven surface", "Non-slip base", "Stitched edges"},
			UseCases:    []string{"Gaming", "Professional use", "Desk setup"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "1 year limited"},
				Details: map[string]string{
					"size":      "900mm x 400mm",
					"thickness": "4mm",
					"material":  "Micro-woven cloth",
					"base":      "Non-slip rubber",
				},
			},
		},
	}
}
