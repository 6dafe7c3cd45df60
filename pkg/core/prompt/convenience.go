package prompt

// Build returns the system instruction and the framed user content for a
// built-in prompt ID.
func Build(id string, input string) (system string, user string, err error) {
	pt, err := Get().GetPrompt(id)
	if err != nil {
		return "", "", err
	}
	user, err = RenderUserPrompt(pt, NewContext().Set("Input", input))
	if err != nil {
		return "", "", err
	}
	return pt.SystemPrompt, user, nil
}
