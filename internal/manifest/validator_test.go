package manifest

import "testing"

func TestValidate(t *testing.T) {
	t.Run("valid manifest", func(t *testing.T) {
		data := []byte(`{
	"name": "MyApp",
	"version": "0.0.1",
	"scripts": {"tsc": "tsc"},
	"devDependencies": {"typescript": "^3.4.5"}
}`)
		result, err := Validate(data)
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if !result.Valid {
			t.Errorf("Validate() reported issues for a valid manifest: %v", result.Issues)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		result, err := Validate([]byte(`{"version": "0.0.1"}`))
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if result.Valid {
			t.Error("Validate() should flag a manifest without a name")
		}
	})

	t.Run("non-string script value", func(t *testing.T) {
		result, err := Validate([]byte(`{"name": "MyApp", "scripts": {"tsc": 42}}`))
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if result.Valid {
			t.Error("Validate() should flag a non-string script value")
		}
		found := false
		for _, issue := range result.Issues {
			if issue.Path == "/scripts/tsc" {
				found = true
			}
		}
		if !found {
			t.Errorf("no issue at /scripts/tsc: %v", result.Issues)
		}
	})

	t.Run("not JSON at all", func(t *testing.T) {
		if _, err := Validate([]byte("definitely not json")); err == nil {
			t.Error("Validate() should return an error for unparseable input")
		}
	})
}
