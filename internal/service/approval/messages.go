package approval

import "fmt"

const heart = "\u2764\uFE0F"

func progressText(code string, count, total int) string {
	return fmt.Sprintf("%s: %d/%d %s", code, count, total, heart)
}

func approvedReplyText(code string, count, total int) string {
	return fmt.Sprintf("✅ Aprovado (%s) — %d/%d %s", code, count, total, heart)
}

func approvedDirectText(code string, count, total int) string {
	return fmt.Sprintf("A tua submissão %s foi aprovada ✅ (%d/%d %s).", code, count, total, heart)
}
