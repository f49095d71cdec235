package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oripovb/orderpay/internal/entity"
)

func paymentRequestMsg(order entity.Order, cardNumber, cardHolder string) string {
	var sb strings.Builder
	sb.WriteString("💳 *Запрос на оплату*\n\n")
	sb.WriteString(fmt.Sprintf("Ваш заказ №%s\n\n", order.Number))
	sb.WriteString("🛒 Заказанные товары:\n")
	for _, item := range order.Items {
		sb.WriteString(fmt.Sprintf("• %d x %s - %s сум\n", item.Quantity, item.Name, formatSum(item.Price)))
	}
	sb.WriteString(fmt.Sprintf("\n💰 Общая сумма: *%s сум*\n\n", formatSum(order.TotalPrice)))
	sb.WriteString("Для оплаты переведите сумму на карту:\n")
	sb.WriteString(fmt.Sprintf("💳 Uzcard: %s\n", cardNumber))
	sb.WriteString(fmt.Sprintf("💤 Владелец карты: %s\n\n", cardHolder))
	sb.WriteString("После перевода, пожалуйста, отправьте сюда скриншот подтверждения оплаты.")

	return sb.String()
}

func paymentReceivedMsg() string {
	return "✅ Спасибо! Скриншот оплаты получен. Мы проверим его и подтвердим оплату в ближайшее время.\n\nВаш заказ будет обработан в кратчайшие сроки!"
}

func orderNotFoundMsg() string {
	return "❌ Не удалось найти ваш заказ. Пожалуйста, свяжитесь с поддержкой."
}

func genericErrorMsg() string {
	return "❌ Произошла ошибка при обработке скриншота. Пожалуйста, свяжитесь с поддержкой."
}

func helpMsg() string {
	var sb strings.Builder
	sb.WriteString("❓ После оформления заказа мы пришлем сюда счет на оплату.\n\n")
	sb.WriteString("Оплатите его переводом на карту и отправьте сюда скриншот подтверждения — мы проверим оплату и подтвердим заказ.\n\n")
	sb.WriteString("⚙️ Доступные команды:\n\n")
	sb.WriteString("/status — статус последнего заказа")

	return sb.String()
}

func orderStatusMsg(order *entity.Order) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📦 Заказ №%s\n\n", order.Number))
	sb.WriteString(fmt.Sprintf("Доставка: %s\n", deliveryStatusStr(order.DeliveryStatus)))
	sb.WriteString(fmt.Sprintf("Оплата: %s\n\n", paymentStatusStr(order.PaymentStatus)))
	sb.WriteString(fmt.Sprintf("💰 Сумма: %s сум", formatSum(order.TotalPrice)))

	return sb.String()
}

func adminPaymentMsg(order *entity.Order, screenshotURL string) string {
	var sb strings.Builder
	sb.WriteString("💰 *Новая оплата получена!*\n\n")
	sb.WriteString(fmt.Sprintf("Заказ №%s\n", order.Number))
	sb.WriteString(fmt.Sprintf("Клиент: %s\n", order.ClientName))
	sb.WriteString(fmt.Sprintf("Телефон: %s\n", order.Phone))
	sb.WriteString(fmt.Sprintf("Сумма: %s сум\n\n", formatSum(order.TotalPrice)))
	sb.WriteString(fmt.Sprintf("Скриншот: %s", screenshotURL))

	return sb.String()
}

func deliveryStatusStr(status entity.DeliveryStatus) string {
	switch status {
	case entity.DeliveryStatusNew:
		return "🆕 Новый"
	case entity.DeliveryStatusProcessing:
		return "⏳ В обработке"
	case entity.DeliveryStatusDelivering:
		return "🚚 Доставляется"
	case entity.DeliveryStatusCompleted:
		return "✅ Завершен"
	case entity.DeliveryStatusCancelled:
		return "❌ Отменен"
	default:
		return string(status)
	}
}

func paymentStatusStr(status entity.PaymentStatus) string {
	switch status {
	case entity.PaymentStatusPending:
		return "⏳ Ожидает оплаты"
	case entity.PaymentStatusPaid:
		return "✅ Оплачен"
	case entity.PaymentStatusFailed:
		return "❌ Ошибка оплаты"
	default:
		return string(status)
	}
}

// formatSum выводит сумму с разделителями групп разрядов: 25000 -> "25 000".
// Дробная часть отделяется запятой, как принято в русской записи.
func formatSum(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var sb strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(d)
	}

	result := sb.String()
	if negative {
		result = "-" + result
	}
	if fracPart != "" {
		result += "," + fracPart
	}

	return result
}
