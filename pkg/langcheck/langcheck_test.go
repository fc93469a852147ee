package langcheck

import "testing"

func TestDetectEnglishBody(t *testing.T) {
	c := NewChecker()
	html := `<p>Hiring great baristas starts with a clear job description and a
structured interview process that respects the candidate's time.</p>
<h2>Write the job post</h2>
<p>Describe the shift schedule, the pay range, and the skills that actually
matter behind the counter.</p>`

	lang, ok := c.Detect(html)
	if !ok {
		t.Fatal("Detect() ok = false, want true")
	}
	if lang != "English" {
		t.Errorf("Detect() = %q, want English", lang)
	}
}

func TestDetectSpanishBody(t *testing.T) {
	c := NewChecker()
	html := `<p>Contratar buenos baristas comienza con una descripción clara del
puesto y un proceso de entrevista estructurado que respete el tiempo de los
candidatos.</p>`

	lang, ok := c.Detect(html)
	if !ok {
		t.Fatal("Detect() ok = false, want true")
	}
	if lang != "Spanish" {
		t.Errorf("Detect() = %q, want Spanish", lang)
	}
}

func TestDetectEmptyFragment(t *testing.T) {
	c := NewChecker()
	if _, ok := c.Detect("<p>   </p>"); ok {
		t.Error("Detect() ok = true for empty text, want false")
	}
}
