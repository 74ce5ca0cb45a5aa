package detect

import (
	"testing"
)

func TestSniff_JSON(t *testing.T) {
	input := `{"primaryColor":"#ff0000","extractedColors":["#00ff00"]}`
	if got := Sniff([]byte(input)); got != JSON {
		t.Errorf("expected JSON, got %s", got)
	}
}

func TestSniff_YAML(t *testing.T) {
	input := "primary_color: \"#ff0000\"\nextracted_colors:\n  - \"#00ff00\"\n"
	if got := Sniff([]byte(input)); got != YAML {
		t.Errorf("expected YAML, got %s", got)
	}
}

func TestSniff_Empty(t *testing.T) {
	if got := Sniff([]byte("")); got != Unknown {
		t.Errorf("expected Unknown for empty, got %s", got)
	}
}

func TestSniff_PlainText(t *testing.T) {
	if got := Sniff([]byte("this is not a mapping")); got != Unknown {
		t.Errorf("expected Unknown for plain text, got %s", got)
	}
}

func TestSniff_InvalidJSON(t *testing.T) {
	if got := Sniff([]byte("{invalid")); got != Unknown {
		t.Errorf("expected Unknown for invalid JSON, got %s", got)
	}
}

func TestSniff_LeadingWhitespace(t *testing.T) {
	input := "\n\n  {\"secondaryColor\":\"#fff\"}\n"
	if got := Sniff([]byte(input)); got != JSON {
		t.Errorf("expected JSON with leading whitespace, got %s", got)
	}
}

func TestDecodeBrand_JSON(t *testing.T) {
	o, err := DecodeBrand([]byte(`{"primaryColor":"#ff0000","logoUrl":"https://example.com/l.png","extractedColors":["#111111","#222222"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.PrimaryColor != "#ff0000" || o.LogoURL != "https://example.com/l.png" || len(o.ExtractedColors) != 2 {
		t.Errorf("unexpected overrides: %+v", o)
	}
}

func TestDecodeBrand_YAML(t *testing.T) {
	o, err := DecodeBrand([]byte("secondary_color: teal\nextracted_colors: [\"#111111\"]\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.SecondaryColor != "teal" || len(o.ExtractedColors) != 1 {
		t.Errorf("unexpected overrides: %+v", o)
	}
}

func TestDecodeBrand_RejectsUnknownFields(t *testing.T) {
	if _, err := DecodeBrand([]byte(`{"primary":"#ff0000"}`)); err == nil {
		t.Error("expected error for unknown JSON field")
	}
	if _, err := DecodeBrand([]byte("primary: red\n")); err == nil {
		t.Error("expected error for unknown YAML field")
	}
}

func TestDecodeBrand_Unknown(t *testing.T) {
	if _, err := DecodeBrand([]byte("- just\n- a list\n")); err == nil {
		t.Error("expected error for a YAML sequence")
	}
}
