package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/straye-as/bizdesk-api/internal/analytics"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/mapper"
)

// Messages returned without calling the text service
const (
	NoOverdueInvoicesMessage = "لا توجد فواتير متأخرة لتحليلها. عمل رائع!"
	NoDuePayablesMessage     = "لا توجد فواتير مستحقة للدفع. التدفق النقدي في حالة ممتازة!"
)

// reportContextLimit caps how many records of each collection go into a report prompt
const reportContextLimit = 10

// formatSAR renders an amount with thousands separators, dropping a zero fraction
func formatSAR(amount float64) string {
	rounded := math.Round(amount*100) / 100
	neg := rounded < 0
	if neg {
		rounded = -rounded
	}
	whole := int64(rounded)
	frac := int64(math.Round((rounded - float64(whole)) * 100))

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac > 0 {
		fmt.Fprintf(&b, ".%02d", frac)
	}
	return b.String()
}

func receivablesSummaryPrompt(overdue []domain.Invoice) string {
	lines := make([]string, len(overdue))
	for i, inv := range overdue {
		lines[i] = fmt.Sprintf("- فاتورة %s للعميل '%s' بمبلغ %s ر.س، تاريخ الاستحقاق %s",
			inv.ID, inv.CustomerName, formatSAR(inv.Amount), domain.FormatDate(inv.DueDate))
	}
	return fmt.Sprintf(`أنت مستشار مالي خبير. بناءً على قائمة الفواتير المتأخرة التالية بالريال السعودي، قدم ملخصًا للحالة وقائمة توصيات قابلة للتنفيذ لتحصيل هذه المبالغ. كن محددًا ومهنيًا في اقتراحاتك.

الفواتير المتأخرة:
%s

الملخص المطلوب:
1. تقييم موجز للمخاطر المالية الحالية.
2. قائمة من 3-4 خطوات مقترحة حسب الأولوية (مثال: التواصل الهاتفي، إرسال بريد إلكتروني رسمي، النظر في الإجراءات القانونية).
3. صياغة نموذج بريد إلكتروني مهذب وقوي لإرساله إلى العملاء المتأخرين.`, strings.Join(lines, "\n"))
}

func payablesSummaryPrompt(open []domain.Payable) string {
	lines := make([]string, len(open))
	for i, p := range open {
		lines[i] = fmt.Sprintf("- فاتورة %s للمورد '%s' بمبلغ %s ر.س، تاريخ الاستحقاق %s",
			p.ID, p.SupplierName, formatSAR(p.Amount), domain.FormatDate(p.DueDate))
	}
	return fmt.Sprintf(`أنت مدير مالي استراتيجي. بناءً على قائمة الفواتير المستحقة والمتأخرة التالية بالريال السعودي، قدم ملخصًا وخطة عمل لإدارة المدفوعات بفعالية.

فواتير الموردين:
%s

التحليل المطلوب:
1. تقييم موجز للالتزامات المالية القادمة.
2. اقتراح خطة دفع ذات أولوية للحفاظ على علاقات جيدة مع الموردين وتجنب الرسوم المتأخرة.
3. نصيحة حول إدارة التدفق النقدي بناءً على هذه الالتزامات.`, strings.Join(lines, "\n"))
}

func reminderPrompt(inv domain.Invoice, customer domain.Customer, overdue bool) string {
	statusText := "ستستحق قريباً"
	if overdue {
		statusText = "متأخرة"
	}
	return fmt.Sprintf(`أنت مساعد محاسبة ودود ومحترف. مهمتك هي كتابة مسودة بريد إلكتروني لتذكير عميل بفاتورة %s.

**تفاصيل الفاتورة:**
- **العميل:** %s
- **جهة الاتصال:** %s
- **رقم الفاتورة:** %s
- **المبلغ:** %s ر.س
- **تاريخ الاستحقاق:** %s

**المطلوب:**
1. اكتب مسودة بريد إلكتروني باللغة العربية.
2. استخدم عنوانًا واضحًا للبريد الإلكتروني (مثال: تذكير بخصوص الفاتورة رقم %s).
3. ابدأ بتحية مهذبة موجهة إلى %s.
4. اذكر بلطف أن هذا تذكير بخصوص الفاتورة المذكورة أعلاه.
5. وضح المبلغ وتاريخ الاستحقاق.
6. إذا كانت الفاتورة متأخرة، اطلب تحديثًا عن حالة الدفع. إذا كانت ستستحق قريباً، اذكر أنها للمعلومية.
7. اختتم البريد الإلكتروني بشكل احترافي مع دعوة للتواصل في حال وجود أي استفسارات.

اجعل النص مهذبًا ومباشرًا.`,
		statusText, customer.Name, customer.ContactPerson, inv.ID, formatSAR(inv.Amount),
		domain.FormatDate(inv.DueDate), inv.ID, customer.ContactPerson)
}

func pricingAdvicePrompt(offer domain.Offer, basis analytics.CostBasis, comms []domain.Communication, inventory []domain.InventoryItem) string {
	items := "  - لا توجد بنود مسعرة بعد."
	if len(basis.Items) > 0 {
		lines := make([]string, len(basis.Items))
		for i, line := range basis.Items {
			lines[i] = fmt.Sprintf("- %s (الكمية: %d, أفضل تكلفة: %s ر.س)", line.Description, line.Quantity, formatSAR(line.Cost))
		}
		items = strings.Join(lines, "\n")
	}

	history := "- لا يوجد سجل تواصل سابق."
	if len(comms) > 0 {
		lines := make([]string, len(comms))
		for i, c := range comms {
			lines[i] = fmt.Sprintf("- %s: %s", domain.FormatDate(c.Date), c.Summary)
		}
		history = strings.Join(lines, "\n")
	}

	products := make([]string, len(inventory))
	for i, item := range inventory {
		products[i] = fmt.Sprintf("- %s (السعر: %s ر.س)", item.Name, formatSAR(item.SellingPrice))
	}

	return fmt.Sprintf(`أنت خبير استراتيجي في المبيعات ومُعزز مبيعات ذكي لشركة تقنية سعودية تعمل في قطاع B2B. مهمتك هي تحليل عرض السعر وبيانات العميل التالية لزيادة الإيرادات وفرص إغلاق الصفقة.

**تفاصيل عرض السعر:**
- العميل: %s
- الموضوع: %s
- البنود والتكاليف:
%s
- إجمالي التكلفة من الموردين: %s ر.س
- سعر البيع المقترح: %s ر.س

**سجل تواصل العميل:**
%s

**المنتجات المتاحة للبيع الإضافي (Upsell/Cross-sell):**
%s

**المطلوب (باللغة العربية):**
أنشئ استراتيجية مبيعات شاملة ومنظمة.

1. **تحليل السعر والتوصية:**
   * احسب هامش الربح الحالي.
   * بناءً على البنود وسجل العميل، أوصِ باستراتيجية تسعير نهائية (مثال: "الحفاظ على السعر"، "عرض خصم 5%% للإغلاق السريع"، "زيادة السعر بسبب القيمة المضافة العالية"). برر توصيتك.

2. **فرص البيع الإضافي (Upsell & Cross-Sell):**
   * حدد 1-2 منتجات **محددة** من قائمة المنتجات المتاحة تكون ذات صلة ببنود العرض الحالي.
   * لكل اقتراح، قدم مبررًا موجزًا يشرح لماذا هو مناسب لهذا العميل.

3. **مسودة رسالة متابعة شخصية:**
   * اكتب مسودة رسالة بريد إلكتروني قصيرة ومقنعة.
   * ادمج اقتراح البيع الإضافي بشكل طبيعي في الرسالة.
   * سلط الضوء على القيمة المقترحة واخلق شعوراً بالفرصة.

4. **نقاط القوة في التفاوض:**
   * ضع 2-3 نقاط يمكن لمندوب المبيعات استخدامها في المفاوضات لتعزيز قيمة العرض.`,
		offer.CustomerName, offer.Subject, items, formatSAR(basis.TotalCost), formatSAR(offer.TotalSellingPrice),
		history, strings.Join(products, "\n"))
}

func composePrompt(offer domain.Offer, mode domain.CommunicationType) string {
	communicationType := "رسالة واتساب ودية ومختصرة"
	closing := "تحياتي،"
	if mode == domain.CommunicationTypeEmail {
		communicationType = "بريد إلكتروني احترافي"
		closing = "مع خالص التقدير،"
	}
	return fmt.Sprintf(`أنت مساعد مبيعات خبير ومتخصص في صياغة المراسلات التجارية باللغة العربية. مهمتك هي كتابة %s بناءً على تفاصيل عرض السعر التالي.

**بيانات العرض:**
- **العميل:** %s
- **الموضوع:** %s
- **إجمالي سعر البيع:** %s ر.س
- **صالح حتى:** %s

**المطلوب:**
1. اكتب %s لإرساله إلى العميل.
2. ابدأ بتحية مناسبة.
3. أشر إلى عرض السعر المرفق بخصوص "%s".
4. اذكر بإيجاز القيمة التي يقدمها العرض.
5. اذكر السعر الإجمالي وتاريخ صلاحية العرض.
6. ادعُ العميل لمناقشة أي تفاصيل أو أسئلة قد تكون لديه.
7. اختتم الرسالة بشكل احترافي مع %s.

اجعل النص مقنعًا وواضحًا وموجزًا.`,
		communicationType, offer.CustomerName, offer.Subject, formatSAR(offer.TotalSellingPrice),
		domain.FormatDate(offer.ValidUntil), communicationType, offer.Subject, closing)
}

// composeLogSummary is the communication log entry for a sent offer
func composeLogSummary(offer domain.Offer) string {
	return fmt.Sprintf("أرسل عرض السعر #%s (%s)", offer.ID, offer.Subject)
}

func inventoryAdvicePrompt(items []domain.InventoryItem) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("- المنتج: %s (SKU: %s), الكمية الحالية: %d, نقطة إعادة الطلب: %d, سرعة المبيعات (شهريًا): %s, مدة التوريد (أيام): %d",
			item.Name, item.SKU, item.Quantity, item.ReorderPoint,
			strconv.FormatFloat(item.SalesVelocity, 'f', -1, 64), item.LeadTimeDays)
	}
	return fmt.Sprintf(`أنت خبير في إدارة سلسلة التوريد والمخزون. بناءً على بيانات المخزون التالية، قم بتحليل الوضع وقدم توصيات واضحة وقابلة للتنفيذ.

بيانات المخزون:
%s

التحليل المطلوب:
1. **ملخص الوضع العام:** قدم نظرة عامة موجزة عن صحة المخزون.
2. **إجراءات عاجلة:** حدد المنتجات التي وصلت إلى نقطة إعادة الطلب أو أقل منها وتحتاج إلى طلب شراء فوري.
3. **توصيات إعادة الطلب:** لكل منتج عاجل، اقترح كمية الطلب المثالية مع الأخذ في الاعتبار سرعة المبيعات ومدة التوريد لتغطية الفترة القادمة (مثلاً، شهرين).
4. **تنبيهات مستقبلية:** حدد المنتجات التي تقترب من نقطة إعادة الطلب ويجب مراقبتها عن كثب.
5. **نصيحة إضافية:** قدم نصيحة واحدة لتحسين إدارة المخزون بشكل عام بناءً على البيانات.

اجعل النص منظمًا وسهل القراءة باستخدام العناوين والنقاط.`, strings.Join(lines, "\n"))
}

// offerContext and purchaseOrderContext replace item lists by their length
type offerContext struct {
	domain.OfferDTO
	Items int `json:"items"`
}

type purchaseOrderContext struct {
	domain.PurchaseOrderDTO
	Items int `json:"items"`
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func toJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(b)
}

func reportPrompt(ds domain.Dataset, query string) string {
	invoices := firstN(ds.Invoices, reportContextLimit)
	invoiceDTOs := make([]domain.InvoiceDTO, len(invoices))
	for i := range invoices {
		invoiceDTOs[i] = mapper.ToInvoiceDTO(&invoices[i])
	}

	payables := firstN(ds.Payables, reportContextLimit)
	payableDTOs := make([]domain.PayableDTO, len(payables))
	for i := range payables {
		payableDTOs[i] = mapper.ToPayableDTO(&payables[i])
	}

	offers := firstN(ds.Offers, reportContextLimit)
	offerCtx := make([]offerContext, len(offers))
	for i := range offers {
		offerCtx[i] = offerContext{OfferDTO: mapper.ToOfferDTO(&offers[i]), Items: len(offers[i].Items)}
	}

	orders := firstN(ds.PurchaseOrders, reportContextLimit)
	orderCtx := make([]purchaseOrderContext, len(orders))
	for i := range orders {
		orderCtx[i] = purchaseOrderContext{PurchaseOrderDTO: mapper.ToPurchaseOrderDTO(&orders[i]), Items: len(orders[i].Items)}
	}

	return fmt.Sprintf(`أنت محلل مالي وخبير في ذكاء الأعمال. مهمتك هي تحليل البيانات المالية التالية لشركة صغيرة والإجابة على سؤال المستخدم.

**البيانات المتاحة:**
**بيانات الذمم المدينة (الفواتير):**
%s

**بيانات الذمم الدائنة (فواتير الموردين):**
%s

**بيانات عروض الأسعار:**
%s

**بيانات أوامر الشراء:**
%s

**سؤال المستخدم:**
"%s"

**المطلوب:**
قدم إجابتك بتنسيق JSON حصريًا. يجب أن يحتوي كائن JSON على المفاتيح التالية:
1. "summary": سلسلة نصية (string) تحتوي على إجابة نصية مفصلة وواضحة لسؤال المستخدم. استخدم تنسيق الماركداون الخفيف (مثل **للنص العريض** والقوائم النقطية) لجعل الملخص سهل القراءة.
2. "chartType": سلسلة نصية (string) تكون إحدى هذه القيم: 'line', 'bar', 'pie', أو 'none'. اختر أفضل نوع مخطط لتصور البيانات المتعلقة بالإجابة. استخدم 'none' إذا لم يكن المخطط مناسبًا.
3. "chartData": مصفوفة (array) من الكائنات (objects). مثال لمخطط شريطي: [{"name": "العميل أ", "Value": 45000}, {"name": "العميل ب", "Value": 30000}]. إذا كان chartType هو 'none'، يجب أن تكون هذه مصفوفة فارغة. يجب أن يكون مفتاح القيمة (مثل "Value" في المثال) ثابتًا ومتسقًا.`,
		toJSON(invoiceDTOs), toJSON(payableDTOs), toJSON(offerCtx), toJSON(orderCtx), query)
}
