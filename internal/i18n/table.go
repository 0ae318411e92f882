package i18n

// table is the full message catalogue. Keys are grouped by surface; keep new
// keys in the group they belong to.
var table = map[string]entry{
	// shell
	"shell.title":    {en: "National Immigration Portal", vi: "Cổng Dịch vụ Xuất nhập cảnh Quốc gia"},
	"shell.subtitle": {en: "Socialist Republic of Vietnam", vi: "Cộng hòa Xã hội Chủ nghĩa Việt Nam"},
	"shell.footer":   {en: "© Immigration Department — official service portal", vi: "© Cục Quản lý Xuất nhập cảnh — cổng dịch vụ chính thức"},
	"shell.lang":     {en: "Tiếng Việt", vi: "English"},

	// menu / routes
	"menu.home":        {en: "Home", vi: "Trang chủ"},
	"menu.about":       {en: "About", vi: "Giới thiệu"},
	"menu.government":  {en: "Government", vi: "Chính phủ"},
	"menu.pm":          {en: "Prime Minister", vi: "Thủ tướng"},
	"menu.information": {en: "Information", vi: "Thông tin"},
	"menu.news":        {en: "News", vi: "Tin tức"},
	"menu.resources":   {en: "Resources", vi: "Tài nguyên"},
	"menu.workpermit":  {en: "Work Permit", vi: "Giấy phép lao động"},
	"menu.visa":        {en: "Visa", vi: "Thị thực"},
	"menu.trc":         {en: "Temporary Residence Card", vi: "Thẻ tạm trú"},
	"menu.verify":      {en: "Verify a Document", vi: "Tra cứu giấy tờ"},
	"menu.support":     {en: "Support", vi: "Hỗ trợ"},
	"menu.console":     {en: "Management Console", vi: "Bảng quản trị"},
	"menu.quit":        {en: "Quit", vi: "Thoát"},

	// verification
	"verify.title":       {en: "Document Verification", vi: "Tra cứu giấy tờ"},
	"verify.passport":    {en: "Passport number", vi: "Số hộ chiếu"},
	"verify.email":       {en: "Email (optional)", vi: "Email (không bắt buộc)"},
	"verify.type":        {en: "Document type", vi: "Loại giấy tờ"},
	"verify.submit":      {en: "Check", vi: "Tra cứu"},
	"verify.checking":    {en: "Checking the national registry...", vi: "Đang tra cứu cơ sở dữ liệu quốc gia..."},
	"verify.valid":       {en: "Document %s is valid. Issued by %s, sponsored by %s.", vi: "Giấy tờ %s hợp lệ. Cấp bởi %s, bảo lãnh bởi %s."},
	"verify.expired":     {en: "Document %s is no longer valid (status: %s).", vi: "Giấy tờ %s không còn hiệu lực (trạng thái: %s)."},
	"verify.pending":     {en: "Application %s is being processed. Status: %s, payment: %s.", vi: "Hồ sơ %s đang được xử lý. Trạng thái: %s, thanh toán: %s."},
	"verify.notfound":    {en: "No document was found for the given passport number.", vi: "Không tìm thấy giấy tờ với số hộ chiếu đã nhập."},
	"verify.error":       {en: "A system error occurred. Please try again later.", vi: "Đã xảy ra lỗi hệ thống. Vui lòng thử lại sau."},
	"verify.copy":        {en: "c copy result", vi: "c sao chép kết quả"},
	"verify.copied":      {en: "Copied!", vi: "Đã sao chép!"},

	// wizard
	"wizard.step":         {en: "Step %d of %d", vi: "Bước %d / %d"},
	"wizard.next":         {en: "enter next", vi: "enter tiếp tục"},
	"wizard.back":         {en: "esc back", vi: "esc quay lại"},
	"wizard.submit":       {en: "enter submit application", vi: "enter nộp hồ sơ"},
	"wizard.submitting":   {en: "Submitting application...", vi: "Đang nộp hồ sơ..."},
	"wizard.required":     {en: "All fields on this step are required", vi: "Vui lòng điền đầy đủ các trường"},
	"wizard.closed":       {en: "This service is currently not accepting applications.", vi: "Dịch vụ hiện không nhận hồ sơ mới."},
	"wizard.done":         {en: "Application submitted. Your reference number:", vi: "Đã nộp hồ sơ. Mã hồ sơ của bạn:"},
	"wizard.done.hint":    {en: "Keep this number to track your application. c copy", vi: "Giữ mã này để tra cứu hồ sơ. c sao chép"},
	"wizard.fee":          {en: "Service fee: %s VND", vi: "Lệ phí: %s VND"},
	"wizard.attach.hint":  {en: "Enter a local file path; files are attached to your submission at intake.", vi: "Nhập đường dẫn tệp; tệp được đính kèm khi tiếp nhận hồ sơ."},

	// wizard field labels
	"field.full_name":       {en: "Full name", vi: "Họ và tên"},
	"field.passport_number": {en: "Passport number", vi: "Số hộ chiếu"},
	"field.nationality":     {en: "Nationality", vi: "Quốc tịch"},
	"field.date_of_birth":   {en: "Date of birth", vi: "Ngày sinh"},
	"field.gender":          {en: "Gender", vi: "Giới tính"},
	"field.email":           {en: "Email", vi: "Email"},
	"field.phone":           {en: "Phone", vi: "Điện thoại"},
	"field.current_address": {en: "Current address", vi: "Địa chỉ hiện tại"},
	"field.vietnam_address": {en: "Address in Vietnam", vi: "Địa chỉ tại Việt Nam"},
	"field.employer":        {en: "Employer", vi: "Đơn vị sử dụng lao động"},
	"field.job_title":       {en: "Job title", vi: "Chức danh"},
	"field.visa_type":       {en: "Visa type", vi: "Loại thị thực"},
	"field.entry_type":      {en: "Entry type", vi: "Số lần nhập cảnh"},
	"field.duration":        {en: "Duration", vi: "Thời hạn"},
	"field.sponsor_name":    {en: "Sponsor name", vi: "Tên đơn vị bảo lãnh"},
	"field.license_number":  {en: "License number", vi: "Số giấy phép"},
	"field.passport_scan":   {en: "Passport scan", vi: "Bản quét hộ chiếu"},
	"field.supporting_doc":  {en: "Supporting document", vi: "Giấy tờ kèm theo"},
	"field.photo":           {en: "Biometric photo", vi: "Ảnh chân dung"},
	"field.payment_proof":   {en: "Payment receipt", vi: "Biên lai thanh toán"},

	// console
	"console.title":          {en: "Management Console", vi: "Bảng quản trị"},
	"console.username":       {en: "Username", vi: "Tài khoản"},
	"console.password":       {en: "Password", vi: "Mật khẩu"},
	"console.login":          {en: "enter sign in", vi: "enter đăng nhập"},
	"console.denied":         {en: "Invalid username or password", vi: "Sai tài khoản hoặc mật khẩu"},
	"console.blocked":        {en: "This device has been blocked by an administrator", vi: "Thiết bị này đã bị khóa bởi quản trị viên"},
	"console.records":        {en: "Official Records", vi: "Hồ sơ chính thức"},
	"console.applications":   {en: "Applications", vi: "Hồ sơ đã nộp"},
	"console.devices":        {en: "Devices", vi: "Thiết bị"},
	"console.logs":           {en: "Audit Log", vi: "Nhật ký"},
	"console.notices":        {en: "Notices", vi: "Thông báo"},
	"console.rules":          {en: "Rules", vi: "Quy định"},
	"console.settings":       {en: "Services", vi: "Dịch vụ"},
	"console.open":           {en: "Open", vi: "Đang nhận hồ sơ"},
	"console.closed":         {en: "Closed", vi: "Ngừng nhận hồ sơ"},
	"console.wipe":           {en: "Wipe all data", vi: "Xóa toàn bộ dữ liệu"},
	"console.wipe.confirm":   {en: "Delete ALL portal data? y/n", vi: "Xóa TOÀN BỘ dữ liệu? y/n"},
	"console.filter":         {en: "filter", vi: "lọc"},
	"console.save.failed":    {en: "Save failed: %s", vi: "Lưu thất bại: %s"},
	"console.delete.confirm": {en: "Delete %s? y/n", vi: "Xóa %s? y/n"},

	// pages (static copy, abbreviated)
	"page.about.body": {
		en: "The National Immigration Portal provides official information on work permits, visas and temporary residence cards, and verification of documents issued by the Immigration Department.",
		vi: "Cổng Dịch vụ Xuất nhập cảnh Quốc gia cung cấp thông tin chính thức về giấy phép lao động, thị thực, thẻ tạm trú và tra cứu giấy tờ do Cục Quản lý Xuất nhập cảnh cấp.",
	},
	"page.support.body": {
		en: "For assistance contact the service desk at hotro@xuatnhapcanh.gov.vn or call 1900 0000 during working hours.",
		vi: "Để được hỗ trợ, liên hệ hotro@xuatnhapcanh.gov.vn hoặc gọi 1900 0000 trong giờ hành chính.",
	},
	"page.news.empty":      {en: "No announcements have been published.", vi: "Chưa có thông báo nào."},
	"page.resources.empty": {en: "No regulations have been published.", vi: "Chưa có quy định nào."},
}
