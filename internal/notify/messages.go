package notify

import (
	"fmt"
	"strings"

	"github.com/JoseSC30/superburguer-miniapp/internal/models"
)

// StatusLabel renders the human-readable label for a status. Unknown values
// pass through unchanged.
func StatusLabel(status models.OrderStatus) string {
	switch status {
	case models.OrderStatusPending:
		return "⏳ Pendiente"
	case models.OrderStatusPreparing:
		return "👨‍🍳 En preparación"
	case models.OrderStatusDelivering:
		return "🚚 En camino"
	case models.OrderStatusDelivered:
		return "✅ Entregado"
	case models.OrderStatusConfirmed:
		return "✅ Pago confirmado"
	default:
		return string(status)
	}
}

func statusEmoji(status models.OrderStatus) string {
	switch status {
	case models.OrderStatusPending:
		return "⏳"
	case models.OrderStatusPreparing:
		return "👨‍🍳"
	case models.OrderStatusDelivering:
		return "🚚"
	default:
		return "✅"
	}
}

// OrderReceived renders the confirmation sent right after an order is
// created. userName may be empty when the caller did not identify itself.
func OrderReceived(order *models.Order, userName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "✅ *Pedido #%d Recibido*\n\n", order.ID)
	if userName != "" {
		fmt.Fprintf(&b, "👤 Cliente: %s\n", userName)
	}
	fmt.Fprintf(&b, "📅 Fecha: %s\n\n", order.CreatedAt.Format("02/01/2006 15:04"))
	b.WriteString("🍔 *Detalle del pedido:*\n")

	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s x%d - Bs. %.2f\n", item.Name, item.Quantity, item.UnitPrice*float64(item.Quantity))
	}

	fmt.Fprintf(&b, "\n💰 *Total: Bs. %.2f*\n\n", order.Total)
	b.WriteString("⏱️ Tiempo estimado de entrega: 30-45 minutos\n")
	b.WriteString("\n_Te notificaremos cuando tu pedido esté en camino._")

	return b.String()
}

// StatusUpdate renders the message sent when an order changes status.
func StatusUpdate(order *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🔔 *Actualización de tu pedido #%d*\n\n", order.ID)
	b.WriteString(StatusLabel(order.Status))
	if order.Status == models.OrderStatusDelivering {
		b.WriteString("\n\nTu pedido está en camino! 🚚")
	}

	return b.String()
}

// OrderList renders the reply to "Ver Mis Pedidos".
func OrderList(orders []*models.Order) string {
	if len(orders) == 0 {
		return "No tienes pedidos registrados."
	}

	var b strings.Builder
	b.WriteString("📋 *Tus Pedidos:*\n\n")
	for _, order := range orders {
		fmt.Fprintf(&b, "%s *Pedido #%d*\n", statusEmoji(order.Status), order.ID)
		fmt.Fprintf(&b, "Fecha: %s\n", order.CreatedAt.Format("02/01/2006 15:04"))
		fmt.Fprintf(&b, "Total: Bs. %.2f\n", order.Total)
		fmt.Fprintf(&b, "Estado: %s\n\n", StatusLabel(order.Status))
	}

	return b.String()
}

// Welcome is the /start greeting.
const Welcome = `🍔 *¡Bienvenido a SuperBurguer!*

Las mejores hamburguesas están a solo un click de distancia.

Presiona el botón de abajo para ver nuestro menú y hacer tu pedido.`

// Help is the /ayuda reply.
const Help = `❓ *Ayuda de SuperBurguer*

*Cómo hacer un pedido:*
1. Presiona "🍔 Hacer Pedido"
2. Selecciona tus hamburguesas
3. Presiona "Enviar Pedido"
4. ¡Listo! Recibirás una confirmación

*Comandos disponibles:*
/start - Iniciar el bot
/pedidos - Ver tus pedidos
/ayuda - Mostrar esta ayuda

*Tiempo de entrega:* 30-45 minutos
*Métodos de pago:* Efectivo en la entrega`

// OrderFailed is the generic try-again reply when order processing fails.
const OrderFailed = "❌ Hubo un error al procesar tu pedido. Por favor, intenta nuevamente."
