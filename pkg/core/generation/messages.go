package generation

// FallbackText is shown in place of an empty model answer.
func FallbackText(t Task) string {
	switch t {
	case TaskKPI:
		return "عذراً، لم يتمكن النظام من توليد النتائج. حاول مرة أخرى."
	case TaskImprovementPlan:
		return "عذراً، لم يتمكن النظام من بناء الخطة. حاول مرة أخرى."
	default:
		return "فشل في توليد التقرير."
	}
}

// ErrorText is shown when generation fails.
func ErrorText(t Task) string {
	switch t {
	case TaskKPI:
		return "حدث خطأ أثناء الاتصال بالذكاء الاصطناعي. يرجى التحقق من المفتاح البرمجي."
	case TaskImprovementPlan:
		return "حدث خطأ أثناء الاتصال بالذكاء الاصطناعي."
	default:
		return "حدث خطأ أثناء توليد التقرير."
	}
}

// Display maps a generation outcome to the text a user sees.
func Display(t Task, text string, err error) string {
	if err != nil {
		return ErrorText(t)
	}
	if text == "" {
		return FallbackText(t)
	}
	return text
}
