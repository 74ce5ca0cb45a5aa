package tokens

// Hand-authored industry baselines, registered in lookup order. Aliases
// listed after a baseline resolve to it. Each baseline is a complete token
// set; the pipeline only ever copies them.

func init() {
	registerBaseline(DefaultBaseline())
	registerBaseline(ManufacturingBaseline(), "industrial", "factory", "fabrication", "machining")
	registerBaseline(ConstructionBaseline(), "contractor", "builder", "roofing", "home-services", "remodeling")
	registerBaseline(HealthcareBaseline(), "medical", "clinic", "dental", "hospital", "pharmacy")
	registerBaseline(LegalBaseline(), "law-firm", "attorney", "lawyer")
	registerBaseline(FinanceBaseline(), "financial", "accounting", "bank", "insurance", "wealth", "investment")
	registerBaseline(TechnologyBaseline(), "software", "saas", "tech", "it-services", "cybersecurity", "startup")
	registerBaseline(RealEstateBaseline(), "realtor", "property", "realty", "mortgage")
	registerBaseline(HospitalityBaseline(), "restaurant", "hotel", "cafe", "catering", "bakery")
	registerBaseline(RetailBaseline(), "ecommerce", "e-commerce", "shop", "store", "boutique", "fashion")
	registerBaseline(EducationBaseline(), "school", "tutoring", "university", "academy", "training", "childcare")
	registerBaseline(ProfessionalServicesBaseline(), "consulting", "consultant", "agency", "marketing", "staffing")
	registerBaseline(AutomotiveBaseline(), "auto", "dealership", "auto-repair", "mechanic", "car-dealer")
	registerBaseline(WellnessBaseline(), "day-spa", "salon", "beauty", "fitness", "yoga", "gym", "massage")
	registerBaseline(NonprofitBaseline(), "charity", "foundation", "church", "community")
	registerBaseline(LogisticsBaseline(), "trucking", "shipping", "freight", "warehousing", "transportation", "moving")
}

// DefaultBaseline returns the neutral set used when no industry matches.
func DefaultBaseline() TokenSet {
	return TokenSet{
		ID:          "default",
		Name:        "General Business",
		Description: "Balanced, neutral starting point for businesses without a more specific industry match.",
		Colors: ColorPalette{
			Primary:        "#2563eb",
			PrimaryHover:   "#2159d4",
			PrimaryMuted:   "#2563eb1a",
			Secondary:      "#0f172a",
			SecondaryHover: "#0e1526",
			SecondaryMuted: "#0f172a1a",

			Background:    "#ffffff",
			BackgroundAlt: "#f8fafc",
			Surface:       "#ffffff",
			SurfaceHover:  "#f1f5f9",

			TextPrimary:   "#0f172a",
			TextSecondary: "#475569",
			TextMuted:     "#94a3b8",
			TextInverse:   "#ffffff",

			Success: "#16a34a",
			Warning: "#d97706",
			Error:   "#dc2626",
			Info:    "#2563eb",

			Border:       "#e2e8f0",
			BorderStrong: "#cbd5e1",
		},
		Typography: Typography{
			HeadingFont:          "'Inter', sans-serif",
			BodyFont:             "'Inter', sans-serif",
			HeadingWeight:        700,
			BodyWeight:           400,
			BaseSize:             "16px",
			HeadingLineHeight:    "1.2",
			BodyLineHeight:       "1.6",
			HeadingLetterSpacing: "-0.02em",
			BodyLetterSpacing:    "0",
			Style:                TypographyModern,
		},
		Spacing: Spacing{
			SectionPaddingY:   "96px",
			SectionPaddingX:   "24px",
			ContainerMaxWidth: "1200px",
			CardPadding:       "32px",
			CardGap:           "24px",
			ElementGap:        "16px",
			StackGap:          "12px",
			Density:           DensityComfortable,
		},
		Components: Components{
			RadiusSmall:     "4px",
			RadiusMedium:    "8px",
			RadiusLarge:     "16px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 1px 2px rgba(0, 0, 0, 0.05)",
			ShadowMedium:    "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.1)",
			ShadowLarge:     "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -4px rgba(0, 0, 0, 0.1)",
			BorderWidth:     "1px",
			IconStyle:       IconOutline,
			IconStrokeWidth: "1.5",
			ButtonStyle:     ButtonSolid,
			CardStyle:       CardElevated,
		},
		Imagery: Imagery{
			Style:           ImageryPhotography,
			OverlayOpacity:  0.45,
			OverlayColor:    "#0f172a",
			OverlayGradient: "linear-gradient(180deg, #0f172a00 0%, #0f172ab3 100%)",
			Treatment:       TreatmentNone,
		},
	}
}

// ManufacturingBaseline returns a sturdy, high-contrast set for plants and fabricators.
func ManufacturingBaseline() TokenSet {
	return TokenSet{
		ID:          "manufacturing",
		Name:        "Manufacturing & Industrial",
		Description: "Sturdy, high-contrast palette with technical typography for plants, fabricators and industrial suppliers.",
		Colors: ColorPalette{
			Primary:        "#1e3a5f",
			PrimaryHover:   "#1b3456",
			PrimaryMuted:   "#1e3a5f1a",
			Secondary:      "#f59e0b",
			SecondaryHover: "#dd8e0a",
			SecondaryMuted: "#f59e0b1a",

			Background:    "#ffffff",
			BackgroundAlt: "#f4f5f7",
			Surface:       "#ffffff",
			SurfaceHover:  "#eceef2",

			TextPrimary:   "#111827",
			TextSecondary: "#4b5563",
			TextMuted:     "#9ca3af",
			TextInverse:   "#ffffff",

			Success: "#15803d",
			Warning: "#d97706",
			Error:   "#b91c1c",
			Info:    "#1d4ed8",

			Border:       "#d1d5db",
			BorderStrong: "#9ca3af",
		},
		Typography: Typography{
			HeadingFont:          "'Barlow Condensed', 'Arial Narrow', sans-serif",
			BodyFont:             "'Barlow', sans-serif",
			HeadingWeight:        700,
			BodyWeight:           400,
			BaseSize:             "16px",
			HeadingLineHeight:    "1.1",
			BodyLineHeight:       "1.6",
			HeadingLetterSpacing: "0.01em",
			BodyLetterSpacing:    "0",
			Style:                TypographyTechnical,
		},
		Spacing: Spacing{
			SectionPaddingY:   "80px",
			SectionPaddingX:   "24px",
			ContainerMaxWidth: "1280px",
			CardPadding:       "28px",
			CardGap:           "20px",
			ElementGap:        "16px",
			StackGap:          "12px",
			Density:           DensityCompact,
		},
		Components: Components{
			RadiusSmall:     "2px",
			RadiusMedium:    "4px",
			RadiusLarge:     "8px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 1px 0 rgba(0, 0, 0, 0.08)",
			ShadowMedium:    "0 2px 4px rgba(0, 0, 0, 0.12)",
			ShadowLarge:     "0 8px 16px rgba(0, 0, 0, 0.16)",
			BorderWidth:     "2px",
			IconStyle:       IconSolid,
			IconStrokeWidth: "2",
			ButtonStyle:     ButtonSharp,
			CardStyle:       CardBordered,
		},
		Imagery: Imagery{
			Style:           ImageryDocumentary,
			OverlayOpacity:  0.55,
			OverlayColor:    "#111827",
			OverlayGradient: "linear-gradient(135deg, #1e3a5fe6 0%, #11182799 100%)",
			Treatment:       TreatmentHighContrast,
		},
	}
}

// ConstructionBaseline returns a bold set for contractors and trades.
func ConstructionBaseline() TokenSet {
	return TokenSet{
		ID:          "construction",
		Name:        "Construction & Trades",
		Description: "Bold safety-orange accents over dependable charcoal for contractors and trade services.",
		Colors: ColorPalette{
			Primary:        "#ea580c",
			PrimaryHover:   "#d34f0b",
			PrimaryMuted:   "#ea580c1a",
			Secondary:      "#1f2937",
			SecondaryHover: "#1c2532",
			SecondaryMuted: "#1f29371a",

			Background:    "#ffffff",
			BackgroundAlt: "#faf7f2",
			Surface:       "#ffffff",
			SurfaceHover:  "#f3efe8",

			TextPrimary:   "#1c1917",
			TextSecondary: "#57534e",
			TextMuted:     "#a8a29e",
			TextInverse:   "#ffffff",

			Success: "#16a34a",
			Warning: "#ca8a04",
			Error:   "#dc2626",
			Info:    "#0284c7",

			Border:       "#e7e5e4",
			BorderStrong: "#a8a29e",
		},
		Typography: Typography{
			HeadingFont:          "'Oswald', 'Impact', sans-serif",
			BodyFont:             "'Source Sans 3', sans-serif",
			HeadingWeight:        700,
			BodyWeight:           400,
			BaseSize:             "17px",
			HeadingLineHeight:    "1.1",
			BodyLineHeight:       "1.6",
			HeadingLetterSpacing: "0.02em",
			BodyLetterSpacing:    "0",
			Style:                TypographyBold,
		},
		Spacing: Spacing{
			SectionPaddingY:   "88px",
			SectionPaddingX:   "24px",
			ContainerMaxWidth: "1200px",
			CardPadding:       "28px",
			CardGap:           "24px",
			ElementGap:        "16px",
			StackGap:          "12px",
			Density:           DensityComfortable,
		},
		Components: Components{
			RadiusSmall:     "2px",
			RadiusMedium:    "6px",
			RadiusLarge:     "10px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 1px 0 rgba(0, 0, 0, 0.08)",
			ShadowMedium:    "0 2px 4px rgba(0, 0, 0, 0.12)",
			ShadowLarge:     "0 8px 16px rgba(0, 0, 0, 0.16)",
			BorderWidth:     "2px",
			IconStyle:       IconSolid,
			IconStrokeWidth: "2",
			ButtonStyle:     ButtonSolid,
			CardStyle:       CardBordered,
		},
		Imagery: Imagery{
			Style:           ImageryDocumentary,
			OverlayOpacity:  0.5,
			OverlayColor:    "#1c1917",
			OverlayGradient: "linear-gradient(180deg, #1c191700 30%, #1c1917cc 100%)",
			Treatment:       TreatmentWarm,
		},
	}
}

// HealthcareBaseline returns a calm, airy set for clinics and practices.
func HealthcareBaseline() TokenSet {
	return TokenSet{
		ID:          "healthcare",
		Name:        "Healthcare & Medical",
		Description: "Calm, trustworthy teal and soft surfaces for clinics, practices and care providers.",
		Colors: ColorPalette{
			Primary:        "#0d9488",
			PrimaryHover:   "#0c857a",
			PrimaryMuted:   "#0d94881a",
			Secondary:      "#0369a1",
			SecondaryHover: "#035f91",
			SecondaryMuted: "#0369a11a",

			Background:    "#ffffff",
			BackgroundAlt: "#f0fdfa",
			Surface:       "#ffffff",
			SurfaceHover:  "#ecfeff",

			TextPrimary:   "#0f172a",
			TextSecondary: "#475569",
			TextMuted:     "#94a3b8",
			TextInverse:   "#ffffff",

			Success: "#059669",
			Warning: "#d97706",
			Error:   "#dc2626",
			Info:    "#0284c7",

			Border:       "#d5e9e6",
			BorderStrong: "#a7c4c0",
		},
		Typography: Typography{
			HeadingFont:          "'Nunito Sans', sans-serif",
			BodyFont:             "'Nunito Sans', sans-serif",
			HeadingWeight:        600,
			BodyWeight:           400,
			BaseSize:             "17px",
			HeadingLineHeight:    "1.25",
			BodyLineHeight:       "1.7",
			HeadingLetterSpacing: "-0.01em",
			BodyLetterSpacing:    "0",
			Style:                TypographyFriendly,
		},
		Spacing: Spacing{
			SectionPaddingY:   "104px",
			SectionPaddingX:   "24px",
			ContainerMaxWidth: "1160px",
			CardPadding:       "32px",
			CardGap:           "24px",
			ElementGap:        "18px",
			StackGap:          "14px",
			Density:           DensitySpacious,
		},
		Components: Components{
			RadiusSmall:     "6px",
			RadiusMedium:    "12px",
			RadiusLarge:     "20px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 2px 8px rgba(0, 0, 0, 0.04)",
			ShadowMedium:    "0 8px 24px rgba(0, 0, 0, 0.06)",
			ShadowLarge:     "0 24px 48px rgba(0, 0, 0, 0.08)",
			BorderWidth:     "1px",
			IconStyle:       IconOutline,
			IconStrokeWidth: "1.5",
			ButtonStyle:     ButtonPill,
			CardStyle:       CardElevated,
		},
		Imagery: Imagery{
			Style:          ImageryLifestyle,
			OverlayOpacity: 0.3,
			OverlayColor:   "#0f172a",
			Treatment:      TreatmentNone,
		},
	}
}

// LegalBaseline returns a serif-led, conservative set for law firms.
func LegalBaseline() TokenSet {
	return TokenSet{
		ID:          "legal",
		Name:        "Legal Services",
		Description: "Authoritative navy and restrained gold with classic serif headings for law firms.",
		Colors: ColorPalette{
			Primary:        "#1e293b",
			PrimaryHover:   "#1b2535",
			PrimaryMuted:   "#1e293b1a",
			Secondary:      "#b08d57",
			SecondaryHover: "#9e7f4e",
			SecondaryMuted: "#b08d571a",

			Background:    "#ffffff",
			BackgroundAlt: "#f8f7f4",
			Surface:       "#ffffff",
			SurfaceHover:  "#f1efe9",

			TextPrimary:   "#111827",
			TextSecondary: "#4b5563",
			TextMuted:     "#9ca3af",
			TextInverse:   "#ffffff",

			Success: "#15803d",
			Warning: "#b45309",
			Error:   "#b91c1c",
			Info:    "#1e40af",

			Border:       "#e5e1d8",
			BorderStrong: "#c8bfae",
		},
		Typography: Typography{
			HeadingFont:          "'Playfair Display', Georgia, serif",
			BodyFont:             "'Source Serif 4', Georgia, serif",
			HeadingWeight:        700,
			BodyWeight:           400,
			BaseSize:             "17px",
			HeadingLineHeight:    "1.2",
			BodyLineHeight:       "1.7",
			HeadingLetterSpacing: "-0.01em",
			BodyLetterSpacing:    "0",
			Style:                TypographyClassic,
		},
		Spacing: Spacing{
			SectionPaddingY:   "112px",
			SectionPaddingX:   "32px",
			ContainerMaxWidth: "1140px",
			CardPadding:       "36px",
			CardGap:           "28px",
			ElementGap:        "18px",
			StackGap:          "14px",
			Density:           DensitySpacious,
		},
		Components: Components{
			RadiusSmall:     "0px",
			RadiusMedium:    "2px",
			RadiusLarge:     "4px",
			RadiusFull:      "9999px",
			ShadowSmall:     "none",
			ShadowMedium:    "0 1px 2px rgba(0, 0, 0, 0.04)",
			ShadowLarge:     "0 4px 12px rgba(0, 0, 0, 0.08)",
			BorderWidth:     "1px",
			IconStyle:       IconOutline,
			IconStrokeWidth: "1.25",
			ButtonStyle:     ButtonOutline,
			CardStyle:       CardBordered,
		},
		Imagery: Imagery{
			Style:           ImageryPhotography,
			OverlayOpacity:  0.6,
			OverlayColor:    "#111827",
			OverlayGradient: "linear-gradient(90deg, #111827e6 0%, #11182733 100%)",
			Treatment:       TreatmentGrayscale,
		},
	}
}

// FinanceBaseline returns a restrained set for banks, accounting and insurance.
func FinanceBaseline() TokenSet {
	return TokenSet{
		ID:          "finance",
		Name:        "Finance & Insurance",
		Description: "Stable deep blue with a confident green accent for advisors, accountants and insurers.",
		Colors: ColorPalette{
			Primary:        "#1d4ed8",
			PrimaryHover:   "#1a46c2",
			PrimaryMuted:   "#1d4ed81a",
			Secondary:      "#047857",
			SecondaryHover: "#046c4e",
			SecondaryMuted: "#0478571a",

			Background:    "#ffffff",
			BackgroundAlt: "#f8fafc",
			Surface:       "#ffffff",
			SurfaceHover:  "#eff6ff",

			TextPrimary:   "#0b1220",
			TextSecondary: "#475569",
			TextMuted:     "#94a3b8",
			TextInverse:   "#ffffff",

			Success: "#047857",
			Warning: "#b45309",
			Error:   "#b91c1c",
			Info:    "#1d4ed8",

			Border:       "#dbe3ef",
			BorderStrong: "#b6c3d6",
		},
		Typography: Typography{
			HeadingFont:          "'IBM Plex Sans', sans-serif",
			BodyFont:             "'IBM Plex Sans', sans-serif",
			HeadingWeight:        600,
			BodyWeight:           400,
			BaseSize:             "16px",
			HeadingLineHeight:    "1.2",
			BodyLineHeight:       "1.6",
			HeadingLetterSpacing: "-0.01em",
			BodyLetterSpacing:    "0",
			Style:                TypographyRefined,
		},
		Spacing: Spacing{
			SectionPaddingY:   "96px",
			SectionPaddingX:   "24px",
			ContainerMaxWidth: "1200px",
			CardPadding:       "32px",
			CardGap:           "24px",
			ElementGap:        "16px",
			StackGap:          "12px",
			Density:           DensityComfortable,
		},
		Components: Components{
			RadiusSmall:     "4px",
			RadiusMedium:    "6px",
			RadiusLarge:     "12px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 1px 2px rgba(0, 0, 0, 0.05)",
			ShadowMedium:    "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.1)",
			ShadowLarge:     "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -4px rgba(0, 0, 0, 0.1)",
			BorderWidth:     "1px",
			IconStyle:       IconOutline,
			IconStrokeWidth: "1.5",
			ButtonStyle:     ButtonSolid,
			CardStyle:       CardBordered,
		},
		Imagery: Imagery{
			Style:           ImageryPhotography,
			OverlayOpacity:  0.5,
			OverlayColor:    "#0b1220",
			OverlayGradient: "linear-gradient(180deg, #0b122000 0%, #0b1220b3 100%)",
			Treatment:       TreatmentCool,
		},
	}
}

// TechnologyBaseline returns a modern geometric set for software and IT services.
func TechnologyBaseline() TokenSet {
	return TokenSet{
		ID:          "technology",
		Name:        "Technology & Software",
		Description: "Vivid violet and electric cyan on clean surfaces for software and IT companies.",
		Colors: ColorPalette{
			Primary:        "#7c3aed",
			PrimaryHover:   "#7034d5",
			PrimaryMuted:   "#7c3aed1a",
			Secondary:      "#06b6d4",
			SecondaryHover: "#05a4bf",
			SecondaryMuted: "#06b6d41a",

			Background:    "#ffffff",
			BackgroundAlt: "#fafafa",
			Surface:       "#ffffff",
			SurfaceHover:  "#f4f4f5",

			TextPrimary:   "#09090b",
			TextSecondary: "#52525b",
			TextMuted:     "#a1a1aa",
			TextInverse:   "#ffffff",

			Success: "#22c55e",
			Warning: "#f59e0b",
			Error:   "#ef4444",
			Info:    "#3b82f6",

			Border:       "#e4e4e7",
			BorderStrong: "#d4d4d8",
		},
		Typography: Typography{
			HeadingFont:          "'Space Grotesk', sans-serif",
			BodyFont:             "'Inter', sans-serif",
			HeadingWeight:        700,
			BodyWeight:           400,
			BaseSize:             "16px",
			HeadingLineHeight:    "1.1",
			BodyLineHeight:       "1.6",
			HeadingLetterSpacing: "-0.03em",
			BodyLetterSpacing:    "0",
			Style:                TypographyTechnical,
		},
		Spacing: Spacing{
			SectionPaddingY:   "120px",
			SectionPaddingX:   "24px",
			ContainerMaxWidth: "1240px",
			CardPadding:       "32px",
			CardGap:           "24px",
			ElementGap:        "16px",
			StackGap:          "12px",
			Density:           DensitySpacious,
		},
		Components: Components{
			RadiusSmall:     "6px",
			RadiusMedium:    "10px",
			RadiusLarge:     "16px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 2px 8px rgba(0, 0, 0, 0.04)",
			ShadowMedium:    "0 8px 24px rgba(0, 0, 0, 0.06)",
			ShadowLarge:     "0 24px 48px rgba(0, 0, 0, 0.08)",
			BorderWidth:     "1px",
			IconStyle:       IconDuotone,
			IconStrokeWidth: "1.75",
			ButtonStyle:     ButtonSolid,
			CardStyle:       CardGlass,
		},
		Imagery: Imagery{
			Style:           ImageryAbstract,
			OverlayOpacity:  0.35,
			OverlayColor:    "#09090b",
			OverlayGradient: "radial-gradient(circle at 20% 20%, #7c3aed66 0%, #09090bcc 70%)",
			Treatment:       TreatmentDuotone,
		},
	}
}

// RealEstateBaseline returns an image-forward set for agents and property firms.
func RealEstateBaseline() TokenSet {
	return TokenSet{
		ID:          "real-estate",
		Name:        "Real Estate",
		Description: "Warm neutrals with a deep green accent that let property photography lead.",
		Colors: ColorPalette{
			Primary:        "#14532d",
			PrimaryHover:   "#124b29",
			PrimaryMuted:   "#14532d1a",
			Secondary:      "#a16207",
			SecondaryHover: "#915806",
			SecondaryMuted: "#a162071a",

			Background:    "#ffffff",
			BackgroundAlt: "#fbfaf8",
			Surface:       "#ffffff",
			SurfaceHover:  "#f5f3ef",

			TextPrimary:   "#1c1917",
			TextSecondary: "#57534e",
			TextMuted:     "#a8a29e",
			TextInverse:   "#ffffff",

			Success: "#15803d",
			Warning: "#ca8a04",
			Error:   "#b91c1c",
			Info:    "#0369a1",

			Border:       "#e7e3dc",
			BorderStrong: "#cbc3b6",
		},
		Typography: Typography{
			HeadingFont:          "'Cormorant Garamond', Georgia, serif",
			BodyFont:             "'Lato', sans-serif",
			HeadingWeight:        600,
			BodyWeight:           400,
			BaseSize:             "16px",
			HeadingLineHeight:    "1.15",
			BodyLineHeight:       "1.7",
			HeadingLetterSpacing: "0",
			BodyLetterSpacing:    "0.01em",
			Style:                TypographyElegant,
		},
		Spacing: Spacing{
			SectionPaddingY:   "104px",
			SectionPaddingX:   "32px",
			ContainerMaxWidth: "1280px",
			CardPadding:       "32px",
			CardGap:           "28px",
			ElementGap:        "18px",
			StackGap:          "14px",
			Density:           DensitySpacious,
		},
		Components: Components{
			RadiusSmall:     "2px",
			RadiusMedium:    "4px",
			RadiusLarge:     "8px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 2px 8px rgba(0, 0, 0, 0.04)",
			ShadowMedium:    "0 8px 24px rgba(0, 0, 0, 0.06)",
			ShadowLarge:     "0 24px 48px rgba(0, 0, 0, 0.08)",
			BorderWidth:     "1px",
			IconStyle:       IconOutline,
			IconStrokeWidth: "1.25",
			ButtonStyle:     ButtonOutline,
			CardStyle:       CardFlat,
		},
		Imagery: Imagery{
			Style:           ImageryPhotography,
			OverlayOpacity:  0.35,
			OverlayColor:    "#1c1917",
			OverlayGradient: "linear-gradient(180deg, #1c191700 40%, #1c1917b3 100%)",
			Treatment:       TreatmentWarm,
		},
	}
}

// HospitalityBaseline returns a warm set for restaurants, hotels and cafes.
func HospitalityBaseline() TokenSet {
	return TokenSet{
		ID:          "hospitality",
		Name:        "Hospitality & Food",
		Description: "Appetizing terracotta and olive with friendly rounded type for restaurants and hotels.",
		Colors: ColorPalette{
			Primary:        "#c2410c",
			PrimaryHover:   "#af3b0b",
			PrimaryMuted:   "#c2410c1a",
			Secondary:      "#4d7c0f",
			SecondaryHover: "#45700e",
			SecondaryMuted: "#4d7c0f1a",

			Background:    "#fffdf8",
			BackgroundAlt: "#fdf6ec",
			Surface:       "#ffffff",
			SurfaceHover:  "#fbefe0",

			TextPrimary:   "#292524",
			TextSecondary: "#57534e",
			TextMuted:     "#a8a29e",
			TextInverse:   "#ffffff",

			Success: "#4d7c0f",
			Warning: "#d97706",
			Error:   "#b91c1c",
			Info:    "#0e7490",

			Border:       "#f1e4d3",
			BorderStrong: "#dcc7ab",
		},
		Typography: Typography{
			HeadingFont:          "'Fraunces', Georgia, serif",
			BodyFont:             "'DM Sans', sans-serif",
			HeadingWeight:        700,
			BodyWeight:           400,
			BaseSize:             "17px",
			HeadingLineHeight:    "1.15",
			BodyLineHeight:       "1.65",
			HeadingLetterSpacing: "-0.01em",
			BodyLetterSpacing:    "0",
			Style:                TypographyFriendly,
		},
		Spacing: Spacing{
			SectionPaddingY:   "96px",
			SectionPaddingX:   "24px",
			ContainerMaxWidth: "1160px",
			CardPadding:       "28px",
			CardGap:           "24px",
			ElementGap:        "16px",
			StackGap:          "12px",
			Density:           DensityComfortable,
		},
		Components: Components{
			RadiusSmall:     "8px",
			RadiusMedium:    "14px",
			RadiusLarge:     "24px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 1px 2px rgba(0, 0, 0, 0.05)",
			ShadowMedium:    "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.1)",
			ShadowLarge:     "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -4px rgba(0, 0, 0, 0.1)",
			BorderWidth:     "1px",
			IconStyle:       IconSolid,
			IconStrokeWidth: "1.5",
			ButtonStyle:     ButtonPill,
			CardStyle:       CardElevated,
		},
		Imagery: Imagery{
			Style:           ImageryLifestyle,
			OverlayOpacity:  0.3,
			OverlayColor:    "#292524",
			OverlayGradient: "linear-gradient(180deg, #29252400 50%, #292524b3 100%)",
			Treatment:       TreatmentWarm,
		},
	}
}

// RetailBaseline returns a product-first set for shops and e-commerce.
func RetailBaseline() TokenSet {
	return TokenSet{
		ID:          "retail",
		Name:        "Retail & E-commerce",
		Description: "Energetic pink and deep ink with product-first layouts for shops and online stores.",
		Colors: ColorPalette{
			Primary:        "#db2777",
			PrimaryHover:   "#c5236b",
			PrimaryMuted:   "#db27771a",
			Secondary:      "#111827",
			SecondaryHover: "#0f1623",
			SecondaryMuted: "#1118271a",

			Background:    "#ffffff",
			BackgroundAlt: "#fdf2f8",
			Surface:       "#ffffff",
			SurfaceHover:  "#fce7f3",

			TextPrimary:   "#111827",
			TextSecondary: "#4b5563",
			TextMuted:     "#9ca3af",
			TextInverse:   "#ffffff",

			Success: "#16a34a",
			Warning: "#f59e0b",
			Error:   "#e11d48",
			Info:    "#2563eb",

			Border:       "#f3e1ea",
			BorderStrong: "#e2bfd0",
		},
		Typography: Typography{
			HeadingFont:          "'Poppins', sans-serif",
			BodyFont:             "'Poppins', sans-serif",
			HeadingWeight:        700,
			BodyWeight:           400,
			BaseSize:             "16px",
			HeadingLineHeight:    "1.15",
			BodyLineHeight:       "1.6",
			HeadingLetterSpacing: "-0.01em",
			BodyLetterSpacing:    "0",
			Style:                TypographyBold,
		},
		Spacing: Spacing{
			SectionPaddingY:   "80px",
			SectionPaddingX:   "20px",
			ContainerMaxWidth: "1320px",
			CardPadding:       "24px",
			CardGap:           "20px",
			ElementGap:        "14px",
			StackGap:          "10px",
			Density:           DensityCompact,
		},
		Components: Components{
			RadiusSmall:     "6px",
			RadiusMedium:    "12px",
			RadiusLarge:     "20px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 1px 2px rgba(0, 0, 0, 0.05)",
			ShadowMedium:    "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.1)",
			ShadowLarge:     "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -4px rgba(0, 0, 0, 0.1)",
			BorderWidth:     "1px",
			IconStyle:       IconSolid,
			IconStrokeWidth: "1.75",
			ButtonStyle:     ButtonPill,
			CardStyle:       CardFlat,
		},
		Imagery: Imagery{
			Style:          ImageryProduct,
			OverlayOpacity: 0.2,
			OverlayColor:   "#111827",
			Treatment:      TreatmentNone,
		},
	}
}

// EducationBaseline returns a friendly, readable set for schools and tutoring.
func EducationBaseline() TokenSet {
	return TokenSet{
		ID:          "education",
		Name:        "Education & Training",
		Description: "Bright, encouraging blue and sunny yellow with legible type for schools and tutors.",
		Colors: ColorPalette{
			Primary:        "#2563eb",
			PrimaryHover:   "#2159d4",
			PrimaryMuted:   "#2563eb1a",
			Secondary:      "#facc15",
			SecondaryHover: "#e1b813",
			SecondaryMuted: "#facc151a",

			Background:    "#ffffff",
			BackgroundAlt: "#f8fafc",
			Surface:       "#ffffff",
			SurfaceHover:  "#eef2ff",

			TextPrimary:   "#1e293b",
			TextSecondary: "#475569",
			TextMuted:     "#94a3b8",
			TextInverse:   "#ffffff",

			Success: "#16a34a",
			Warning: "#ca8a04",
			Error:   "#dc2626",
			Info:    "#0891b2",

			Border:       "#e0e7ff",
			BorderStrong: "#c7d2fe",
		},
		Typography: Typography{
			HeadingFont:          "'Nunito', sans-serif",
			BodyFont:             "'Open Sans', sans-serif",
			HeadingWeight:        800,
			BodyWeight:           400,
			BaseSize:             "17px",
			HeadingLineHeight:    "1.2",
			BodyLineHeight:       "1.7",
			HeadingLetterSpacing: "0",
			BodyLetterSpacing:    "0",
			Style:                TypographyFriendly,
		},
		Spacing: Spacing{
			SectionPaddingY:   "96px",
			SectionPaddingX:   "24px",
			ContainerMaxWidth: "1200px",
			CardPadding:       "32px",
			CardGap:           "24px",
			ElementGap:        "18px",
			StackGap:          "14px",
			Density:           DensityComfortable,
		},
		Components: Components{
			RadiusSmall:     "8px",
			RadiusMedium:    "14px",
			RadiusLarge:     "24px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 1px 2px rgba(0, 0, 0, 0.05)",
			ShadowMedium:    "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.1)",
			ShadowLarge:     "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -4px rgba(0, 0, 0, 0.1)",
			BorderWidth:     "2px",
			IconStyle:       IconDuotone,
			IconStrokeWidth: "2",
			ButtonStyle:     ButtonPill,
			CardStyle:       CardElevated,
		},
		Imagery: Imagery{
			Style:          ImageryIllustration,
			OverlayOpacity: 0.25,
			OverlayColor:   "#1e293b",
			Treatment:      TreatmentNone,
		},
	}
}

// ProfessionalServicesBaseline returns a polished set for consultancies and agencies.
func ProfessionalServicesBaseline() TokenSet {
	return TokenSet{
		ID:          "professional-services",
		Name:        "Professional Services",
		Description: "Polished slate and teal with refined sans headings for consultancies and agencies.",
		Colors: ColorPalette{
			Primary:        "#0f766e",
			PrimaryHover:   "#0e6a63",
			PrimaryMuted:   "#0f766e1a",
			Secondary:      "#334155",
			SecondaryHover: "#2e3b4d",
			SecondaryMuted: "#3341551a",

			Background:    "#ffffff",
			BackgroundAlt: "#f8fafc",
			Surface:       "#ffffff",
			SurfaceHover:  "#f1f5f9",

			TextPrimary:   "#0f172a",
			TextSecondary: "#475569",
			TextMuted:     "#94a3b8",
			TextInverse:   "#ffffff",

			Success: "#16a34a",
			Warning: "#d97706",
			Error:   "#dc2626",
			Info:    "#2563eb",

			Border:       "#e2e8f0",
			BorderStrong: "#cbd5e1",
		},
		Typography: Typography{
			HeadingFont:          "'Manrope', sans-serif",
			BodyFont:             "'Inter', sans-serif",
			HeadingWeight:        700,
			BodyWeight:           400,
			BaseSize:             "16px",
			HeadingLineHeight:    "1.2",
			BodyLineHeight:       "1.6",
			HeadingLetterSpacing: "-0.02em",
			BodyLetterSpacing:    "0",
			Style:                TypographyRefined,
		},
		Spacing: Spacing{
			SectionPaddingY:   "104px",
			SectionPaddingX:   "24px",
			ContainerMaxWidth: "1200px",
			CardPadding:       "32px",
			CardGap:           "24px",
			ElementGap:        "16px",
			StackGap:          "12px",
			Density:           DensityComfortable,
		},
		Components: Components{
			RadiusSmall:     "4px",
			RadiusMedium:    "8px",
			RadiusLarge:     "12px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 2px 8px rgba(0, 0, 0, 0.04)",
			ShadowMedium:    "0 8px 24px rgba(0, 0, 0, 0.06)",
			ShadowLarge:     "0 24px 48px rgba(0, 0, 0, 0.08)",
			BorderWidth:     "1px",
			IconStyle:       IconOutline,
			IconStrokeWidth: "1.5",
			ButtonStyle:     ButtonSolid,
			CardStyle:       CardBordered,
		},
		Imagery: Imagery{
			Style:           ImageryPhotography,
			OverlayOpacity:  0.45,
			OverlayColor:    "#0f172a",
			OverlayGradient: "linear-gradient(135deg, #0f766ecc 0%, #0f172a99 100%)",
			Treatment:       TreatmentCool,
		},
	}
}

// AutomotiveBaseline returns a high-contrast set for dealerships and repair shops.
func AutomotiveBaseline() TokenSet {
	return TokenSet{
		ID:          "automotive",
		Name:        "Automotive",
		Description: "High-energy red against gunmetal with condensed headings for dealers and repair shops.",
		Colors: ColorPalette{
			Primary:        "#dc2626",
			PrimaryHover:   "#c62222",
			PrimaryMuted:   "#dc26261a",
			Secondary:      "#27272a",
			SecondaryHover: "#232326",
			SecondaryMuted: "#27272a1a",

			Background:    "#ffffff",
			BackgroundAlt: "#f4f4f5",
			Surface:       "#ffffff",
			SurfaceHover:  "#e4e4e7",

			TextPrimary:   "#09090b",
			TextSecondary: "#3f3f46",
			TextMuted:     "#a1a1aa",
			TextInverse:   "#ffffff",

			Success: "#16a34a",
			Warning: "#f59e0b",
			Error:   "#b91c1c",
			Info:    "#2563eb",

			Border:       "#d4d4d8",
			BorderStrong: "#a1a1aa",
		},
		Typography: Typography{
			HeadingFont:          "'Rajdhani', 'Arial Narrow', sans-serif",
			BodyFont:             "'Roboto', sans-serif",
			HeadingWeight:        700,
			BodyWeight:           400,
			BaseSize:             "16px",
			HeadingLineHeight:    "1.05",
			BodyLineHeight:       "1.6",
			HeadingLetterSpacing: "0.02em",
			BodyLetterSpacing:    "0",
			Style:                TypographyBold,
		},
		Spacing: Spacing{
			SectionPaddingY:   "80px",
			SectionPaddingX:   "24px",
			ContainerMaxWidth: "1280px",
			CardPadding:       "24px",
			CardGap:           "20px",
			ElementGap:        "14px",
			StackGap:          "10px",
			Density:           DensityCompact,
		},
		Components: Components{
			RadiusSmall:     "2px",
			RadiusMedium:    "4px",
			RadiusLarge:     "8px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 1px 0 rgba(0, 0, 0, 0.08)",
			ShadowMedium:    "0 2px 4px rgba(0, 0, 0, 0.12)",
			ShadowLarge:     "0 8px 16px rgba(0, 0, 0, 0.16)",
			BorderWidth:     "2px",
			IconStyle:       IconSolid,
			IconStrokeWidth: "2",
			ButtonStyle:     ButtonSharp,
			CardStyle:       CardElevated,
		},
		Imagery: Imagery{
			Style:           ImageryProduct,
			OverlayOpacity:  0.55,
			OverlayColor:    "#09090b",
			OverlayGradient: "linear-gradient(90deg, #09090be6 0%, #09090b00 70%)",
			Treatment:       TreatmentHighContrast,
		},
	}
}

// WellnessBaseline returns a soft, elegant set for spas, salons and fitness.
func WellnessBaseline() TokenSet {
	return TokenSet{
		ID:          "wellness",
		Name:        "Beauty & Wellness",
		Description: "Soft sage and blush with airy spacing and elegant serif headings for spas and studios.",
		Colors: ColorPalette{
			Primary:        "#6b8f71",
			PrimaryHover:   "#608166",
			PrimaryMuted:   "#6b8f711a",
			Secondary:      "#d8a7a0",
			SecondaryHover: "#c29690",
			SecondaryMuted: "#d8a7a01a",

			Background:    "#fffdfb",
			BackgroundAlt: "#f7f3ef",
			Surface:       "#ffffff",
			SurfaceHover:  "#f2ece6",

			TextPrimary:   "#2f2a26",
			TextSecondary: "#6b625b",
			TextMuted:     "#a89f97",
			TextInverse:   "#ffffff",

			Success: "#4f7a57",
			Warning: "#c08a3e",
			Error:   "#b4534b",
			Info:    "#5b7fa3",

			Border:       "#ebe3da",
			BorderStrong: "#d6cabd",
		},
		Typography: Typography{
			HeadingFont:          "'Cormorant', Georgia, serif",
			BodyFont:             "'Jost', sans-serif",
			HeadingWeight:        500,
			BodyWeight:           400,
			BaseSize:             "17px",
			HeadingLineHeight:    "1.2",
			BodyLineHeight:       "1.75",
			HeadingLetterSpacing: "0.01em",
			BodyLetterSpacing:    "0.01em",
			Style:                TypographyElegant,
		},
		Spacing: Spacing{
			SectionPaddingY:   "120px",
			SectionPaddingX:   "32px",
			ContainerMaxWidth: "1120px",
			CardPadding:       "40px",
			CardGap:           "32px",
			ElementGap:        "20px",
			StackGap:          "16px",
			Density:           DensitySpacious,
		},
		Components: Components{
			RadiusSmall:     "12px",
			RadiusMedium:    "20px",
			RadiusLarge:     "32px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 2px 8px rgba(0, 0, 0, 0.04)",
			ShadowMedium:    "0 8px 24px rgba(0, 0, 0, 0.06)",
			ShadowLarge:     "0 24px 48px rgba(0, 0, 0, 0.08)",
			BorderWidth:     "1px",
			IconStyle:       IconOutline,
			IconStrokeWidth: "1.25",
			ButtonStyle:     ButtonPill,
			CardStyle:       CardFlat,
		},
		Imagery: Imagery{
			Style:          ImageryLifestyle,
			OverlayOpacity: 0.2,
			OverlayColor:   "#2f2a26",
			Treatment:      TreatmentWarm,
		},
	}
}

// NonprofitBaseline returns an approachable set for charities and community groups.
func NonprofitBaseline() TokenSet {
	return TokenSet{
		ID:          "nonprofit",
		Name:        "Nonprofit & Community",
		Description: "Hopeful green and warm amber with approachable type for charities and community groups.",
		Colors: ColorPalette{
			Primary:        "#15803d",
			PrimaryHover:   "#137337",
			PrimaryMuted:   "#15803d1a",
			Secondary:      "#f59e0b",
			SecondaryHover: "#dd8e0a",
			SecondaryMuted: "#f59e0b1a",

			Background:    "#ffffff",
			BackgroundAlt: "#f7fdf9",
			Surface:       "#ffffff",
			SurfaceHover:  "#ecfdf3",

			TextPrimary:   "#14261b",
			TextSecondary: "#4b5a50",
			TextMuted:     "#9aa89f",
			TextInverse:   "#ffffff",

			Success: "#15803d",
			Warning: "#d97706",
			Error:   "#dc2626",
			Info:    "#0e7490",

			Border:       "#dcefe3",
			BorderStrong: "#b8d8c4",
		},
		Typography: Typography{
			HeadingFont:          "'Merriweather Sans', sans-serif",
			BodyFont:             "'Source Sans 3', sans-serif",
			HeadingWeight:        700,
			BodyWeight:           400,
			BaseSize:             "17px",
			HeadingLineHeight:    "1.2",
			BodyLineHeight:       "1.7",
			HeadingLetterSpacing: "0",
			BodyLetterSpacing:    "0",
			Style:                TypographyFriendly,
		},
		Spacing: Spacing{
			SectionPaddingY:   "96px",
			SectionPaddingX:   "24px",
			ContainerMaxWidth: "1160px",
			CardPadding:       "32px",
			CardGap:           "24px",
			ElementGap:        "16px",
			StackGap:          "12px",
			Density:           DensityComfortable,
		},
		Components: Components{
			RadiusSmall:     "6px",
			RadiusMedium:    "10px",
			RadiusLarge:     "18px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 1px 2px rgba(0, 0, 0, 0.05)",
			ShadowMedium:    "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.1)",
			ShadowLarge:     "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -4px rgba(0, 0, 0, 0.1)",
			BorderWidth:     "1px",
			IconStyle:       IconDuotone,
			IconStrokeWidth: "1.75",
			ButtonStyle:     ButtonPill,
			CardStyle:       CardElevated,
		},
		Imagery: Imagery{
			Style:           ImageryDocumentary,
			OverlayOpacity:  0.4,
			OverlayColor:    "#14261b",
			OverlayGradient: "linear-gradient(180deg, #14261b00 30%, #14261bb3 100%)",
			Treatment:       TreatmentWarm,
		},
	}
}

// LogisticsBaseline returns a dependable set for freight, shipping and moving.
func LogisticsBaseline() TokenSet {
	return TokenSet{
		ID:          "logistics",
		Name:        "Logistics & Transportation",
		Description: "Dependable navy and signal yellow with dense, scannable layouts for carriers and 3PLs.",
		Colors: ColorPalette{
			Primary:        "#1e40af",
			PrimaryHover:   "#1b3a9e",
			PrimaryMuted:   "#1e40af1a",
			Secondary:      "#eab308",
			SecondaryHover: "#d3a107",
			SecondaryMuted: "#eab3081a",

			Background:    "#ffffff",
			BackgroundAlt: "#f5f7fa",
			Surface:       "#ffffff",
			SurfaceHover:  "#e8edf5",

			TextPrimary:   "#0f172a",
			TextSecondary: "#475569",
			TextMuted:     "#94a3b8",
			TextInverse:   "#ffffff",

			Success: "#15803d",
			Warning: "#ca8a04",
			Error:   "#dc2626",
			Info:    "#0369a1",

			Border:       "#d6dde8",
			BorderStrong: "#aab6c8",
		},
		Typography: Typography{
			HeadingFont:          "'Roboto Condensed', 'Arial Narrow', sans-serif",
			BodyFont:             "'Roboto', sans-serif",
			HeadingWeight:        700,
			BodyWeight:           400,
			BaseSize:             "16px",
			HeadingLineHeight:    "1.1",
			BodyLineHeight:       "1.55",
			HeadingLetterSpacing: "0.01em",
			BodyLetterSpacing:    "0",
			Style:                TypographyTechnical,
		},
		Spacing: Spacing{
			SectionPaddingY:   "80px",
			SectionPaddingX:   "24px",
			ContainerMaxWidth: "1280px",
			CardPadding:       "24px",
			CardGap:           "20px",
			ElementGap:        "14px",
			StackGap:          "10px",
			Density:           DensityCompact,
		},
		Components: Components{
			RadiusSmall:     "2px",
			RadiusMedium:    "4px",
			RadiusLarge:     "8px",
			RadiusFull:      "9999px",
			ShadowSmall:     "0 1px 0 rgba(0, 0, 0, 0.08)",
			ShadowMedium:    "0 2px 4px rgba(0, 0, 0, 0.12)",
			ShadowLarge:     "0 8px 16px rgba(0, 0, 0, 0.16)",
			BorderWidth:     "1px",
			IconStyle:       IconSolid,
			IconStrokeWidth: "2",
			ButtonStyle:     ButtonSharp,
			CardStyle:       CardBordered,
		},
		Imagery: Imagery{
			Style:           ImageryDocumentary,
			OverlayOpacity:  0.5,
			OverlayColor:    "#0f172a",
			OverlayGradient: "linear-gradient(135deg, #1e40afcc 0%, #0f172a99 100%)",
			Treatment:       TreatmentCool,
		},
	}
}
