package dialog

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/heart-approvals/internal/domain"
	"github.com/heartmarshall/heart-approvals/internal/service/approval"
)

const heart = "\u2764\uFE0F"

const (
	msgAskEvent        = "Qual é o evento?"
	msgAskType         = "Que tipo de imagem é? (ex.: Instagram Story, Feed, Poster A3)"
	msgInstructions    = "Envia uma imagem/vídeo/PDF ou um link para começar a aprovação."
	msgRestartMedia    = "Imagem/Vídeo/Documento recebido. Qual é o evento?"
	msgRestartLink     = "Link recebido. Qual é o evento?"
	msgNoGroup         = "\u26A0\uFE0F O bot ainda não está configurado com GROUP_JID no .env. Pede ao admin para definir."
	msgBroadcastFailed = "\u26A0\uFE0F Não foi possível enviar a tua submissão para aprovação. Responde novamente com o tipo para tentar outra vez."
	msgNotRecorded     = "\u26A0\uFE0F A tua submissão foi publicada mas não ficou registada. Pede ajuda ao admin."
	msgStatusFailed    = "\u26A0\uFE0F Não foi possível consultar o estado agora. Tenta mais tarde."
	noneMarker         = "—"
)

func restartPrompt(kind domain.ContentKind) string {
	if kind == domain.ContentKindLink {
		return msgRestartLink
	}
	return msgRestartMedia
}

func confirmationText(code string) string {
	return fmt.Sprintf("A tua submissão foi enviada para aprovação. O teu número de acompanhamento é %s.", code)
}

func notFoundText(code string) string {
	return fmt.Sprintf("Não encontro %s. Exemplo: status #PAR-1234", code)
}

// captionText is the text broadcast with a submission.
func captionText(eventName, assetType, submitter, code string, required, total int) string {
	return strings.Join([]string{
		"📝 Evento: " + eventName,
		"\U0001F5BC\uFE0F Tipo: " + assetType,
		"👤 Submissor: " + submitter,
		"🔎 Tracking: " + code,
		"",
		fmt.Sprintf("Reagem com %s (precisamos de %d/%d).", heart, required, total),
	}, "\n")
}

func linkText(caption, url string) string {
	return caption + "\n🔗 " + url
}

func statusText(code string, s *approval.Summary) string {
	state := "⏳ PENDENTE"
	if s.Item.IsApproved() {
		state = "✅ APROVADO"
	}

	return fmt.Sprintf("%s: %d/%d %s\n%s\nAprovadores: %s\nEm falta: %s",
		code, s.Count, s.Total, heart,
		state,
		joinOrNone(s.Voters),
		joinOrNone(s.Remaining),
	)
}

func joinOrNone(ids []string) string {
	if len(ids) == 0 {
		return noneMarker
	}
	return strings.Join(ids, ", ")
}
