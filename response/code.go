package response

// Message is a user-facing error text. The admin UI is Hebrew-only, so the
// messages are Hebrew and the frontend prints them as-is.
type Message string

const (
	InvalidBody Message = "גוף הבקשה אינו תקין"

	InvalidProjectID    Message = "מזהה פרויקט לא תקין"
	ProjectNameRequired Message = "שם הפרויקט חובה"
	InvalidStatus       Message = "סטטוס הפרויקט אינו תקין"
	InvalidPriority     Message = "עדיפות הפרויקט אינה תקינה"
	InvalidProgress     Message = "התקדמות הפרויקט חייבת להיות בין 0 ל-100"
	InvalidDate         Message = "תאריך חייב להיות בפורמט YYYY-MM-DD"
	ProjectNotFound     Message = "פרויקט לא נמצא"
	ProjectsLoadFailed  Message = "שגיאה בטעינת הפרויקטים"
	ProjectLoadFailed   Message = "שגיאה בטעינת הפרויקט"
	ProjectCreateFailed Message = "שגיאה ביצירת הפרויקט"
	ProjectUpdateFailed Message = "שגיאה בעדכון הפרויקט"
	ProjectDeleteFailed Message = "שגיאה במחיקת הפרויקט"

	ProjectNotArchived     Message = "הפרויקט לא נמצא בארכיון"
	ProjectAlreadyArchived Message = "הפרויקט כבר נמצא בארכיון"
	ArchivedLoadFailed     Message = "שגיאה בטעינת הפרויקטים המארכבים"
	ArchiveFailed          Message = "שגיאה בהעברת הפרויקט לארכיון"
	UnarchiveFailed        Message = "שגיאה בהחזרת הפרויקט מהארכיון"

	InvalidProcessID     Message = "מזהה תהליך לא תקין"
	ProcessNameRequired  Message = "שם התהליך חובה"
	ProcessStepsRequired Message = "שלבי התהליך חובה"
	ProcessNotFound      Message = "תהליך לא נמצא"
	ProcessesLoadFailed  Message = "שגיאה בטעינת התהליכים"
	ProcessLoadFailed    Message = "שגיאה בטעינת התהליך"
	ProcessCreateFailed  Message = "שגיאה ביצירת התהליך"
	ProcessUpdateFailed  Message = "שגיאה בעדכון התהליך"
	ProcessDeleteFailed  Message = "שגיאה במחיקת התהליך"

	InvalidTableName    Message = "שם טבלה לא תקין"
	InvalidPagination   Message = "פרמטרי עימוד לא תקינים"
	TableNotFound       Message = "טבלה לא נמצאה"
	TablesLoadFailed    Message = "שגיאה בטעינת טבלאות בסיס הנתונים"
	TableDataLoadFailed Message = "שגיאה בטעינת נתוני הטבלה"

	ProjectMapFailed     Message = "שגיאה בעדכון מיפוי הפרויקט"
	ActivitiesLoadFailed Message = "שגיאה בטעינת הפעילויות"
	DatabaseUnavailable  Message = "בסיס הנתונים אינו זמין"
)

// Success messages returned next to the affected entity.
const (
	ProjectDeleted    = "הפרויקט נמחק בהצלחה"
	ProjectArchived   = "הפרויקט הועבר לארכיון בהצלחה"
	ProjectUnarchived = "הפרויקט הוחזר מהארכיון בהצלחה"
	ProcessDeleted    = "תהליך נמחק בהצלחה"
	ProjectMapUpdated = "מיפוי הפרויקט עודכן בהצלחה"
)
