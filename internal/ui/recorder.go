package ui

// Recorder is a scripted UserInterface for tests. Each dialog consumes the
// next entry of Answers; once they run out, dialogs return "".
type Recorder struct {
	Answers []string

	Prompts       []string
	SecretPrompts []string
	Infos         []string
	Errors        []string
}

// NewRecorder returns a Recorder that will answer with answers in order.
func NewRecorder(answers ...string) *Recorder {
	return &Recorder{Answers: answers}
}

func (r *Recorder) Dialog(prompt string) string {
	r.Prompts = append(r.Prompts, prompt)
	return r.next()
}

func (r *Recorder) SecretDialog(prompt string) string {
	r.SecretPrompts = append(r.SecretPrompts, prompt)
	return r.next()
}

func (r *Recorder) Info(message string) {
	r.Infos = append(r.Infos, message)
}

func (r *Recorder) Error(message string) {
	r.Errors = append(r.Errors, message)
}

// Dialogs is the number of dialogs shown, secret or not.
func (r *Recorder) Dialogs() int {
	return len(r.Prompts) + len(r.SecretPrompts)
}

func (r *Recorder) next() string {
	if len(r.Answers) == 0 {
		return ""
	}
	a := r.Answers[0]
	r.Answers = r.Answers[1:]
	return a
}
