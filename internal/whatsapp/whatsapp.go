// Package whatsapp monta o link wa.me com o resumo de uma venda para o
// número do gestor. Abrir a conversa fica a cargo de quem consome o link; o
// backend não envia mensagem nenhuma.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"vendas-backend/internal/models"
)

// codigoPais é prefixado quando o número configurado não o traz (DDD puro).
const codigoPais = "55"

// NormalizarNumero remove espaços e qualquer caractere não numérico e
// garante o código do país. Retorna "" para entrada sem dígitos.
func NormalizarNumero(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digitos := b.String()
	if digitos == "" {
		return ""
	}
	if strings.HasPrefix(digitos, codigoPais) {
		return digitos
	}
	return codigoPais + digitos
}

// MensagemVenda compõe o texto enviado ao gestor, no formato do app
// original: cabeçalho, data, uma linha por item e o total.
func MensagemVenda(v models.Venda) (string, error) {
	itens, err := v.DecodeItens()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("🛒 *NOVA VENDA REALIZADA*\n\n")
	fmt.Fprintf(&b, "📅 Data: %s\n\n", v.Data)
	b.WriteString("📦 *Itens vendidos:*\n")
	for _, item := range itens {
		fmt.Fprintf(&b, "• %s - %dx R$ %.2f\n", item.Nome, item.Qtd, item.Preco)
	}
	fmt.Fprintf(&b, "\n💰 *Total: R$ %.2f*", v.Total)
	return b.String(), nil
}

// Link monta a URL wa.me. Espaços viram %20 (não '+') para o texto chegar
// legível no aplicativo.
func Link(numero, mensagem string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(mensagem), "+", "%20")
	return "https://wa.me/" + numero + "?text=" + encoded
}
