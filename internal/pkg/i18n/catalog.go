package i18n

var catalog = map[string]map[Lang]string{
	// generic
	"invalid_request":  {EN: "Invalid request", AR: "طلب غير صالح"},
	"validation_error": {EN: "Validation error", AR: "خطأ في التحقق من البيانات"},
	"not_found":        {EN: "Not found", AR: "غير موجود"},
	"unauthorized":     {EN: "You are not authorized to perform this action", AR: "غير مصرح لك بتنفيذ هذا الإجراء"},
	"unauthenticated":  {EN: "Authentication required", AR: "يجب تسجيل الدخول"},
	"conflict":         {EN: "Conflict with the current state", AR: "تعارض مع الحالة الحالية"},
	"storage_error":    {EN: "Internal server error", AR: "خطأ داخلي في الخادم"},
	"invalid_date":     {EN: "Invalid date format. Use YYYY-MM-DD", AR: "تنسيق التاريخ غير صالح. استخدم YYYY-MM-DD"},
	"invalid_time":     {EN: "Invalid time format. Use HH:MM", AR: "تنسيق الوقت غير صالح. استخدم HH:MM"},
	"invalid_id":       {EN: "Invalid identifier", AR: "معرف غير صالح"},

	// auth
	"user_registered_successfully": {EN: "User registered successfully", AR: "تم تسجيل المستخدم بنجاح"},
	"login_successful":             {EN: "Login successful", AR: "تم تسجيل الدخول بنجاح"},
	"logout_successful":            {EN: "Logout successful", AR: "تم تسجيل الخروج بنجاح"},
	"user_retrieved_successfully":  {EN: "User retrieved successfully", AR: "تم جلب بيانات المستخدم بنجاح"},
	"user_already_exists":          {EN: "A user with this email already exists", AR: "يوجد مستخدم بهذا البريد الإلكتروني بالفعل"},
	"user_not_found":               {EN: "User not found", AR: "المستخدم غير موجود"},
	"invalid_credentials":          {EN: "Invalid email or password", AR: "البريد الإلكتروني أو كلمة المرور غير صحيحة"},
	"user_inactive":                {EN: "Account is inactive", AR: "الحساب غير نشط"},
	"invalid_email":                {EN: "Invalid email address", AR: "البريد الإلكتروني غير صالح"},
	"password_too_weak":            {EN: "Password must be at least 8 characters long", AR: "يجب أن تتكون كلمة المرور من 8 أحرف على الأقل"},
	"invalid_role":                 {EN: "Invalid role", AR: "دور غير صالح"},
	"otp_sent":                     {EN: "Verification code generated", AR: "تم إنشاء رمز التحقق"},
	"invalid_otp":                  {EN: "Invalid or expired verification code", AR: "رمز التحقق غير صالح أو منتهي الصلاحية"},
	"password_reset_successfully":  {EN: "Password reset successfully", AR: "تمت إعادة تعيين كلمة المرور بنجاح"},
	"invalid_name":                 {EN: "Name is required", AR: "الاسم مطلوب"},

	// fields
	"field_created_successfully":        {EN: "Field created successfully", AR: "تم إنشاء الملعب بنجاح"},
	"field_updated_successfully":        {EN: "Field updated successfully", AR: "تم تحديث الملعب بنجاح"},
	"field_deleted_successfully":        {EN: "Field deleted successfully", AR: "تم حذف الملعب بنجاح"},
	"field_retrieved_successfully":      {EN: "Field retrieved successfully", AR: "تم جلب بيانات الملعب بنجاح"},
	"fields_retrieved_successfully":     {EN: "Fields retrieved successfully", AR: "تم جلب الملاعب بنجاح"},
	"available_fields_retrieved":        {EN: "Available fields retrieved successfully", AR: "تم جلب الملاعب المتاحة بنجاح"},
	"availability_retrieved":            {EN: "Availability retrieved successfully", AR: "تم جلب المواعيد المتاحة بنجاح"},
	"field_not_found":                   {EN: "Field not found", AR: "الملعب غير موجود"},
	"invalid_field":                     {EN: "Invalid field data", AR: "بيانات الملعب غير صالحة"},
	"invalid_operating_hours":           {EN: "Opening time must be before closing time", AR: "يجب أن يكون وقت الفتح قبل وقت الإغلاق"},
	"invalid_price":                     {EN: "Price must not be negative", AR: "يجب ألا يكون السعر سالباً"},
	"facilities_retrieved_successfully": {EN: "Facilities retrieved successfully", AR: "تم جلب مرافق الملعب بنجاح"},
	"facilities_updated_successfully":   {EN: "Facilities updated successfully", AR: "تم تحديث مرافق الملعب بنجاح"},
	"invalid_facility":                  {EN: "Facility names must be 1 to 50 characters, at most 20 per field", AR: "يجب أن يتكون اسم المرفق من 1 إلى 50 حرفاً وبحد أقصى 20 مرفقاً للملعب"},

	// bookings
	"booking_created_successfully":    {EN: "Booking created successfully", AR: "تم إنشاء الحجز بنجاح"},
	"booking_updated_successfully":    {EN: "Booking updated successfully", AR: "تم تحديث الحجز بنجاح"},
	"booking_deleted_successfully":    {EN: "Booking deleted successfully", AR: "تم حذف الحجز بنجاح"},
	"booking_retrieved_successfully":  {EN: "Booking retrieved successfully", AR: "تم جلب الحجز بنجاح"},
	"bookings_retrieved_successfully": {EN: "Bookings retrieved successfully", AR: "تم جلب الحجوزات بنجاح"},
	"booking_not_found":               {EN: "Booking not found", AR: "الحجز غير موجود"},
	"invalid_window":                  {EN: "Start time must be before end time", AR: "يجب أن يكون وقت البداية قبل وقت النهاية"},
	"outside_operating_hours":         {EN: "The requested time is outside the field's operating hours", AR: "الوقت المطلوب خارج ساعات عمل الملعب"},
	"slot_unavailable":                {EN: "The field is already booked for this time slot", AR: "الملعب محجوز بالفعل في هذا الوقت"},
	"invalid_status":                  {EN: "Invalid status transition", AR: "تغيير الحالة غير صالح"},

	// payments
	"payment_created_successfully":   {EN: "Payment created successfully", AR: "تم إنشاء الدفع بنجاح"},
	"payment_updated_successfully":   {EN: "Payment status updated successfully", AR: "تم تحديث حالة الدفع بنجاح"},
	"payment_refunded_successfully":  {EN: "Payment refunded successfully", AR: "تم استرداد المبلغ بنجاح"},
	"payment_retrieved_successfully": {EN: "Payment retrieved successfully", AR: "تم جلب بيانات الدفع بنجاح"},
	"payments_retrieved":             {EN: "Payments retrieved successfully", AR: "تم جلب المدفوعات بنجاح"},
	"payment_methods_retrieved":      {EN: "Payment methods retrieved successfully", AR: "تم جلب طرق الدفع بنجاح"},
	"payment_not_found":              {EN: "Payment not found", AR: "عملية الدفع غير موجودة"},
	"payment_already_completed":      {EN: "This booking has already been paid", AR: "تم دفع هذا الحجز بالفعل"},
	"payment_not_refundable":         {EN: "Only completed payments can be refunded", AR: "يمكن استرداد المدفوعات المكتملة فقط"},
	"invalid_payment_method":         {EN: "Invalid payment method", AR: "طريقة دفع غير صالحة"},
	"invalid_payment_status":         {EN: "Invalid payment status", AR: "حالة دفع غير صالحة"},
	"booking_not_payable":            {EN: "Cancelled or completed bookings cannot be paid", AR: "لا يمكن دفع حجز ملغي أو مكتمل"},

	// teams
	"team_created_successfully":    {EN: "Team created successfully", AR: "تم إنشاء الفريق بنجاح"},
	"team_retrieved_successfully":  {EN: "Team retrieved successfully", AR: "تم جلب بيانات الفريق بنجاح"},
	"member_added_successfully":    {EN: "Member added successfully", AR: "تمت إضافة العضو بنجاح"},
	"left_team_successfully":       {EN: "You have left the team", AR: "لقد غادرت الفريق"},
	"team_not_found":               {EN: "Team not found", AR: "الفريق غير موجود"},
	"already_team_member":          {EN: "User is already a member of this team", AR: "المستخدم عضو في هذا الفريق بالفعل"},
	"not_team_member":              {EN: "You are not a member of this team", AR: "أنت لست عضواً في هذا الفريق"},
	"leader_cannot_leave":          {EN: "The team leader cannot leave the team", AR: "لا يمكن لقائد الفريق مغادرة الفريق"},
	"invalid_team":                 {EN: "Invalid team data", AR: "بيانات الفريق غير صالحة"},
	"teams_retrieved_successfully": {EN: "Teams retrieved successfully", AR: "تم جلب الفرق بنجاح"},
	"team_updated_successfully":    {EN: "Team updated successfully", AR: "تم تحديث الفريق بنجاح"},
	"team_deleted_successfully":    {EN: "Team deleted successfully", AR: "تم حذف الفريق بنجاح"},
	"joined_team_successfully":     {EN: "You have joined the team", AR: "لقد انضممت إلى الفريق"},
	"member_removed_successfully":  {EN: "Member removed successfully", AR: "تمت إزالة العضو بنجاح"},
	"team_schedule_retrieved":      {EN: "Team schedule retrieved successfully", AR: "تم جلب جدول الفريق بنجاح"},
	"cannot_remove_team_leader":    {EN: "The team leader cannot be removed", AR: "لا يمكن إزالة قائد الفريق"},

	// reviews
	"review_created_successfully": {EN: "Review created successfully", AR: "تم إنشاء التقييم بنجاح"},
	"review_deleted_successfully": {EN: "Review deleted successfully", AR: "تم حذف التقييم بنجاح"},
	"review_updated_successfully": {EN: "Review updated successfully", AR: "تم تحديث التقييم بنجاح"},
	"reviews_retrieved":           {EN: "Reviews retrieved successfully", AR: "تم جلب التقييمات بنجاح"},
	"review_not_found":            {EN: "Review not found", AR: "التقييم غير موجود"},
	"review_already_exists":       {EN: "You have already reviewed this field", AR: "لقد قمت بتقييم هذا الملعب بالفعل"},
	"invalid_rating":              {EN: "Rating must be between 1 and 5", AR: "يجب أن يكون التقييم بين 1 و 5"},
	"comment_too_long":            {EN: "Comment is too long", AR: "التعليق طويل جداً"},

	// notifications
	"notifications_retrieved":   {EN: "Notifications retrieved successfully", AR: "تم جلب الإشعارات بنجاح"},
	"notification_marked_read":  {EN: "Notification marked as read", AR: "تم تعليم الإشعار كمقروء"},
	"notifications_marked_read": {EN: "All notifications marked as read", AR: "تم تعليم جميع الإشعارات كمقروءة"},
	"notification_deleted":      {EN: "Notification deleted successfully", AR: "تم حذف الإشعار بنجاح"},
	"notification_retrieved":    {EN: "Notification retrieved successfully", AR: "تم جلب الإشعار بنجاح"},
	"unread_count_retrieved":    {EN: "Unread count retrieved successfully", AR: "تم جلب عدد الإشعارات غير المقروءة"},
	"notification_not_found":    {EN: "Notification not found", AR: "الإشعار غير موجود"},

	// analytics
	"dashboard_retrieved":         {EN: "Dashboard retrieved successfully", AR: "تم جلب لوحة المعلومات بنجاح"},
	"booking_trends_retrieved":    {EN: "Booking trends retrieved successfully", AR: "تم جلب اتجاهات الحجوزات بنجاح"},
	"revenue_trends_retrieved":    {EN: "Revenue trends retrieved successfully", AR: "تم جلب اتجاهات الإيرادات بنجاح"},
	"field_performance_retrieved": {EN: "Field performance retrieved successfully", AR: "تم جلب أداء الملاعب بنجاح"},

	// clubs
	"club_details_retrieved":    {EN: "Club details retrieved successfully", AR: "تم جلب بيانات النادي بنجاح"},
	"clubs_search_completed":    {EN: "Club search completed", AR: "تم البحث عن الأندية بنجاح"},
	"top_rated_clubs_retrieved": {EN: "Top rated clubs retrieved successfully", AR: "تم جلب الأندية الأعلى تقييماً بنجاح"},
	"club_not_found":            {EN: "Club not found", AR: "النادي غير موجود"},
}
